package account

import "errors"

var (
	// ErrBadMagic indicates the file does not start with "ACCT".
	ErrBadMagic = errors.New("account: bad magic")
	// ErrBadVersion indicates an unsupported format version.
	ErrBadVersion = errors.New("account: unsupported format version")
	// ErrTruncated indicates a file shorter than the header.
	ErrTruncated = errors.New("account: truncated header")
	// ErrClosed indicates use of a closed file account.
	ErrClosed = errors.New("account: closed")
	// ErrDataIncrease indicates a realloc that grows data by more than
	// MaxPermittedDataIncrease in one call.
	ErrDataIncrease = errors.New("account: data increase exceeds limit")
	// ErrTooLarge indicates a realloc past MaxDataLen.
	ErrTooLarge = errors.New("account: data length exceeds limit")
)
