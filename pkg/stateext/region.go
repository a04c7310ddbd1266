package stateext

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/stateext/internal/format"
	"github.com/joshuapare/stateext/pkg/types"
)

// Region applies the extension lifecycle to accounts of one Layout.
//
// NOT thread-safe. The host must give each operation exclusive access to
// the account it touches.
type Region struct {
	layout Layout
	rent   Rent
	bank   Transferer
	log    *slog.Logger
}

// Option configures a Region.
type Option func(*Region)

// WithLogger sets the logger used for per-operation debug records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Region) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegion validates layout and binds it to the host's rent and transfer
// primitives.
func NewRegion(layout Layout, rent Rent, bank Transferer, opts ...Option) (*Region, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if rent == nil || bank == nil {
		return nil, errors.New("stateext: rent and transfer primitives are required")
	}
	r := &Region{
		layout: layout,
		rent:   rent,
		bank:   bank,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Layout returns the layout the region was built with.
func (r *Region) Layout() Layout { return r.layout }

func (r *Region) ownedBy(acc Account) bool {
	return acc.Owner().Equal(r.layout.Owner)
}

// Add appends ext as a new Initialized entry. The first add also writes the
// region marker.
//
// The rent payment is made before the account grows; a failed payment
// leaves the account untouched.
func Add[E any, P Codec[E]](r *Region, acc Account, payer Account, ext P) error {
	r.log.Debug("add extension", "type", ext.ExtType(), "account", acc.Key())

	if !r.ownedBy(acc) {
		return fmt.Errorf("stateext: add: %w", types.ErrIllegalOwner)
	}
	data := acc.Data()
	if len(data) == 0 {
		return fmt.Errorf("stateext: add: empty account: %w", types.ErrInvalidAccountData)
	}
	dataLen := len(data)
	if dataLen < r.layout.BaseLen {
		return fmt.Errorf("stateext: add: data is %d bytes, base record needs %d: %w",
			dataLen, r.layout.BaseLen, types.ErrInvalidAccountData)
	}

	payload, err := pack(ext)
	if err != nil {
		return fmt.Errorf("stateext: add: %w", err)
	}

	first := dataLen == r.layout.BaseLen
	if limit := r.layout.MaxExtensions; limit > 0 && !first {
		if n := len(scanEntries(r.layout, data).Entries); n >= limit {
			return fmt.Errorf("stateext: add: %d of %d: %w", n, limit, types.ErrTooManyExtensions)
		}
	}

	reserve := r.layout.reserve(dataLen, ext)
	newLen := dataLen + reserve
	rentSize := newLen
	if r.layout.RentBasis == RentOnDelta {
		rentSize = reserve
	}
	lamports := r.rent.MinimumBalance(rentSize)

	if err := r.bank.Transfer(payer, acc, lamports); err != nil {
		return fmt.Errorf("stateext: add: %w", types.ErrTransferFailed.With(err))
	}
	if err := acc.Realloc(newLen, true); err != nil {
		return fmt.Errorf("stateext: add: %w", types.ErrReallocFailed.With(err))
	}

	out := make([]byte, 0, reserve)
	entryOff := dataLen
	if first {
		out = append(out, r.layout.Marker[:]...)
		entryOff += MarkerLen
	}
	out, err = format.AppendEntry(out, ext.ExtType(), Initialized.Byte(), payload)
	if err != nil {
		return fmt.Errorf("stateext: add: %w", types.ErrInvalidAccountData.With(err))
	}

	data = acc.Data()
	if len(data) < newLen {
		return fmt.Errorf("stateext: add: account is %d bytes after realloc to %d: %w",
			len(data), newLen, types.ErrInvalidAccountData)
	}
	copy(data[dataLen:newLen], out)

	r.log.Debug("extension added", "type", ext.ExtType(), "offset", entryOff, "len", newLen)
	return nil
}

// Update rewrites the first entry tagged tag in place with ext. A missing
// entry is not an error. A Zeroed entry fails with types.ErrNotInitialized.
func Update[E any, P Codec[E]](r *Region, acc Account, tag Tag, ext P) error {
	r.log.Debug("update extension", "type", ext.ExtType(), "account", acc.Key())

	info, ok := Get[E, P](r, acc, tag)
	if !ok {
		return nil
	}
	if info.State == Zeroed {
		return fmt.Errorf("stateext: update tag %d at %d: %w", tag.Byte(), info.Position, types.ErrNotInitialized)
	}

	payload, err := pack(ext)
	if err != nil {
		return fmt.Errorf("stateext: update: %w", err)
	}
	data := acc.Data()
	hdr := format.EntryHeader{Tag: ext.ExtType(), State: Initialized.Byte(), Len: ext.ExtLen()}
	if err := format.PutEntryHeader(data, info.Position, hdr); err != nil {
		return fmt.Errorf("stateext: update: %w", types.ErrInvalidAccountData.With(err))
	}
	copy(data[info.PayloadOffset():], payload)
	return nil
}

// ZeroOut clears the payload of the first entry tagged tag and marks it
// Zeroed. A missing entry is not an error. An entry that is already Zeroed
// fails with types.ErrAlreadyZeroed.
func ZeroOut[E any, P Codec[E]](r *Region, acc Account, tag Tag) error {
	var probe E
	r.log.Debug("zero out extension", "type", P(&probe).ExtType(), "account", acc.Key())

	info, ok := Get[E, P](r, acc, tag)
	if !ok {
		return nil
	}
	if info.State == Zeroed {
		return fmt.Errorf("stateext: zero out tag %d at %d: %w", tag.Byte(), info.Position, types.ErrAlreadyZeroed)
	}

	data := acc.Data()
	start := info.PayloadOffset()
	end := start + int(P(&probe).ExtLen())
	if end > len(data) {
		return fmt.Errorf("stateext: zero out: %w", types.ErrInvalidAccountData)
	}
	clear(data[start:end])
	data[info.Position+format.EntryStateOffset] = Zeroed.Byte()
	return nil
}

// Get finds the first entry tagged tag that decodes as E. Accounts not owned
// by the layout's program, and accounts too short to hold the marker, have
// no extensions.
func Get[E any, P Codec[E]](r *Region, acc Account, tag Tag) (Info[E], bool) {
	if !r.ownedBy(acc) {
		return Info[E]{}, false
	}
	data := acc.Data()
	if len(data) < format.RegionStart(r.layout.BaseLen) {
		return Info[E]{}, false
	}
	return FindInData[E, P](r.layout, data, tag.Byte())
}

// Variants lists the recognised extension tags present on acc in append
// order. The boolean is false when the account has no extension region.
func Variants[V Enum[V]](r *Region, acc Account) ([]V, bool) {
	if !r.ownedBy(acc) {
		return nil, false
	}
	data := acc.Data()
	if len(data) <= r.layout.BaseLen {
		return nil, false
	}
	return VariantsFromData[V](r.layout, data)
}

