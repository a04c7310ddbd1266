package account

import (
	"fmt"
	"os"

	"github.com/joshuapare/stateext/internal/buf"
	"github.com/joshuapare/stateext/pkg/types"
)

// File is an account backed by a file. On linux, darwin and freebsd the
// file is mmapped read-write and mutations land in the page cache directly;
// elsewhere the file is loaded into memory and written back by Flush.
//
// NOT thread-safe.
type File struct {
	f    *os.File
	path string
	mm   []byte // header + data
	size int64
}

// Create writes a new account file with dataLen zero bytes of data and
// opens it.
func Create(path string, h Header, dataLen int) (*File, error) {
	if dataLen < 0 || dataLen > MaxDataLen {
		return nil, fmt.Errorf("account: invalid data length %d", dataLen)
	}
	raw := make([]byte, HeaderSize+dataLen)
	if err := PutHeader(raw, h); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, fmt.Errorf("account: create %s: %w", path, err)
	}
	return Open(path)
}

func (a *File) header() Header {
	if a == nil || len(a.mm) < HeaderSize {
		return Header{}
	}
	h, _ := ParseHeader(a.mm)
	return h
}

// Path returns the file the account was opened from.
func (a *File) Path() string { return a.path }

func (a *File) Key() types.Pubkey   { return a.header().Key }
func (a *File) Owner() types.Pubkey { return a.header().Owner }
func (a *File) Lamports() uint64    { return a.header().Lamports }

// SetLamports writes the balance into the header.
func (a *File) SetLamports(v uint64) {
	if a == nil || len(a.mm) < HeaderSize {
		return
	}
	buf.PutU64LE(a.mm[LamportsOffset:], v)
}

// Data returns the mapped account data. The slice is invalidated by
// Realloc and Close.
func (a *File) Data() []byte {
	if a == nil || len(a.mm) < HeaderSize {
		return nil
	}
	return a.mm[HeaderSize:]
}

// Realloc resizes the account data to newLen bytes. Growth extends the
// file; the new bytes read as zero.
func (a *File) Realloc(newLen int, _ bool) error {
	if a == nil || a.f == nil {
		return ErrClosed
	}
	if err := checkGrowth(len(a.Data()), newLen); err != nil {
		return err
	}
	return a.resize(int64(HeaderSize + newLen))
}
