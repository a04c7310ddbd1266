package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrNoMarker indicates the bytes after the base record are not the region marker.
	ErrNoMarker = errors.New("format: region marker missing")
	// ErrPayloadTooLarge indicates a payload that does not fit the u16 length field.
	ErrPayloadTooLarge = errors.New("format: payload exceeds u16 length")
)
