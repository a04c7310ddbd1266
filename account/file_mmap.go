//go:build linux || darwin || freebsd

package account

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open mmaps the account file RW so its data can be mutated in place.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz < HeaderSize {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTruncated, path, sz)
	}

	mm, err := mapRW(f, sz)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("account: mmap failed: %w", err)
	}
	if _, err := ParseHeader(mm); err != nil {
		_ = unix.Munmap(mm)
		_ = f.Close()
		return nil, err
	}

	return &File{f: f, path: path, mm: mm, size: sz}, nil
}

func mapRW(f *os.File, size int64) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

// Flush msyncs the mapping so the header and data reach the file.
func (a *File) Flush() error {
	if a == nil || a.mm == nil {
		return ErrClosed
	}
	return unix.Msync(a.mm, unix.MS_SYNC)
}

// Close flushes, unmaps and closes the file.
func (a *File) Close() error {
	if a == nil {
		return nil
	}
	var err error
	if a.mm != nil {
		err = unix.Msync(a.mm, unix.MS_SYNC)
		if unmapErr := unix.Munmap(a.mm); unmapErr != nil && !errors.Is(unmapErr, unix.EINVAL) && err == nil {
			err = unmapErr
		}
		a.mm = nil
	}
	if a.f != nil {
		if closeErr := a.f.Close(); err == nil {
			err = closeErr
		}
		a.f = nil
	}
	return err
}

// resize changes the file size and remaps it. On failure the old mapping
// is restored so the account stays usable.
func (a *File) resize(newSize int64) error {
	if newSize == a.size {
		return nil
	}
	if a.mm != nil {
		if err := unix.Msync(a.mm, unix.MS_SYNC); err != nil {
			return fmt.Errorf("account: msync before resize: %w", err)
		}
		if err := unix.Munmap(a.mm); err != nil {
			return fmt.Errorf("account: failed to unmap before resize: %w", err)
		}
		a.mm = nil
	}

	// Truncate extends with zeros.
	if err := a.f.Truncate(newSize); err != nil {
		a.mm, _ = mapRW(a.f, a.size)
		return fmt.Errorf("account: failed to truncate file: %w", err)
	}

	mm, err := mapRW(a.f, newSize)
	if err != nil {
		_ = a.f.Truncate(a.size)
		a.mm, _ = mapRW(a.f, a.size)
		return fmt.Errorf("account: failed to remap after resize: %w", err)
	}
	a.mm = mm
	a.size = newSize
	return nil
}
