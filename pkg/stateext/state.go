package stateext

import (
	"fmt"

	"github.com/joshuapare/stateext/internal/format"
)

// Tag is anything that names an extension type by its raw tag byte.
type Tag interface {
	Byte() uint8
}

// Enum maps raw bytes to and from a closed set of logical variants. FromByte
// is called on the zero value of V and reports false for an unknown byte.
//
//	type Kind uint8
//
//	func (k Kind) Byte() uint8 { return uint8(k) }
//	func (Kind) FromByte(b uint8) (Kind, bool) {
//	    switch Kind(b) {
//	    case KindRoyalty, KindLabel:
//	        return Kind(b), true
//	    }
//	    return 0, false
//	}
type Enum[V any] interface {
	comparable
	Tag
	FromByte(b uint8) (V, bool)
}

// State is the lifecycle state stored in every entry header.
type State uint8

const (
	// Initialized entries carry a meaningful payload.
	Initialized State = State(format.StateInitialized)
	// Zeroed entries had their payload cleared; the slot is retained.
	Zeroed State = State(format.StateZeroed)
)

// Byte returns the raw state byte.
func (s State) Byte() uint8 { return uint8(s) }

// FromByte decodes a raw state byte.
func (State) FromByte(b uint8) (State, bool) {
	switch b {
	case format.StateInitialized:
		return Initialized, true
	case format.StateZeroed:
		return Zeroed, true
	default:
		return 0, false
	}
}

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Zeroed:
		return "zeroed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}
