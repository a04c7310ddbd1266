//go:build !linux && !darwin && !freebsd

package account

import (
	"fmt"
	"io"
	"os"
)

// Open loads the account file into memory on platforms without mmap support.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz < HeaderSize {
		f.Close()
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTruncated, path, sz)
	}

	mm := make([]byte, sz)
	if _, err := io.ReadFull(f, mm); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := ParseHeader(mm); err != nil {
		f.Close()
		return nil, err
	}
	return &File{f: f, path: path, mm: mm, size: sz}, nil
}

// Flush writes the in-memory copy back to the file.
func (a *File) Flush() error {
	if a == nil || a.f == nil {
		return ErrClosed
	}
	if err := a.f.Truncate(int64(len(a.mm))); err != nil {
		return err
	}
	if _, err := a.f.WriteAt(a.mm, 0); err != nil {
		return err
	}
	return a.f.Sync()
}

// Close flushes and closes the file.
func (a *File) Close() error {
	if a == nil || a.f == nil {
		return nil
	}
	err := a.Flush()
	if closeErr := a.f.Close(); err == nil {
		err = closeErr
	}
	a.f = nil
	a.mm = nil
	return err
}

func (a *File) resize(newSize int64) error {
	if newSize == a.size {
		return nil
	}
	grown := make([]byte, newSize)
	copy(grown, a.mm)
	a.mm = grown
	a.size = newSize
	return nil
}
