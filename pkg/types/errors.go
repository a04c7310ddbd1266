package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindOwnership ErrKind = iota // buffer owner is not the expected authority
	ErrKindMalformed                // buffer too short, truncated entry, bad payload length
	ErrKindResource                 // external transfer or growth failed
	ErrKindLifecycle                // slot is in the wrong state for the operation
	ErrKindLimit                    // region already holds the maximum number of entries
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOwnership:
		return "ownership"
	case ErrKindMalformed:
		return "malformed"
	case ErrKindResource:
		return "resource"
	case ErrKindLifecycle:
		return "lifecycle"
	case ErrKindLimit:
		return "limit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ProgramError is the numeric code a failure maps to when it crosses the
// host boundary. Host codes are small negative sentinels; custom codes are
// the extension layer's own ordinals.
type ProgramError int64

const (
	// CodeIllegalOwner is the host's illegal-owner code.
	CodeIllegalOwner ProgramError = -1
	// CodeInvalidAccountData is the host's invalid-data code.
	CodeInvalidAccountData ProgramError = -2
	// CodeInsufficientFunds is the host's failed-transfer code.
	CodeInsufficientFunds ProgramError = -3
	// CodeMaxExtensions is reported when the extension limit is reached.
	CodeMaxExtensions ProgramError = -4
	// CodeInvalidRealloc is the host's failed-growth code.
	CodeInvalidRealloc ProgramError = -5
)

// Custom builds a program-defined error code.
func Custom(n uint32) ProgramError { return ProgramError(n) }

const (
	// CodeExtensionDataAlreadyZeroed is Custom(0).
	CodeExtensionDataAlreadyZeroed = ProgramError(0)
	// CodeExtensionDataNotInitialized is Custom(1).
	CodeExtensionDataNotInitialized = ProgramError(1)
)

func (c ProgramError) String() string {
	switch c {
	case CodeIllegalOwner:
		return "IllegalOwner"
	case CodeInvalidAccountData:
		return "InvalidAccountData"
	case CodeInsufficientFunds:
		return "InsufficientFunds"
	case CodeMaxExtensions:
		return "MaxExtensions"
	case CodeInvalidRealloc:
		return "InvalidRealloc"
	default:
		if c >= 0 {
			return fmt.Sprintf("Custom(%d)", int64(c))
		}
		return fmt.Sprintf("ProgramError(%d)", int64(c))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Code ProgramError
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same kind and code, so a sentinel wrapped
// with a cause or extra context still satisfies errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// With returns a copy of e carrying cause as its underlying error.
func (e *Error) With(cause error) *Error {
	return &Error{Kind: e.Kind, Code: e.Code, Msg: e.Msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrIllegalOwner indicates the buffer is not owned by the expected program.
	ErrIllegalOwner = &Error{Kind: ErrKindOwnership, Code: CodeIllegalOwner, Msg: "illegal owner"}
	// ErrInvalidAccountData indicates an empty, short or malformed buffer.
	ErrInvalidAccountData = &Error{Kind: ErrKindMalformed, Code: CodeInvalidAccountData, Msg: "invalid account data"}
	// ErrTransferFailed indicates the rent payment could not be made.
	ErrTransferFailed = &Error{Kind: ErrKindResource, Code: CodeInsufficientFunds, Msg: "rent transfer failed"}
	// ErrReallocFailed indicates the host could not grow the account after rent was paid.
	ErrReallocFailed = &Error{Kind: ErrKindResource, Code: CodeInvalidRealloc, Msg: "account realloc failed"}
	// ErrAlreadyZeroed indicates zero-out on a slot that is already cleared.
	ErrAlreadyZeroed = &Error{Kind: ErrKindLifecycle, Code: CodeExtensionDataAlreadyZeroed, Msg: "extension data already zeroed"}
	// ErrNotInitialized indicates update on a cleared slot.
	ErrNotInitialized = &Error{Kind: ErrKindLifecycle, Code: CodeExtensionDataNotInitialized, Msg: "extension data is not initialized"}
	// ErrTooManyExtensions indicates the layout's extension limit was reached.
	ErrTooManyExtensions = &Error{Kind: ErrKindLimit, Code: CodeMaxExtensions, Msg: "maximum number of extensions reached"}
)

// CodeOf extracts the program error code from err. ok is false when err does
// not carry a typed *Error.
func CodeOf(err error) (code ProgramError, ok bool) {
	var te *Error
	if !errors.As(err, &te) {
		return 0, false
	}
	return te.Code, true
}
