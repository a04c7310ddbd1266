package tokenext

import (
	"fmt"
	"strings"
)

// Kind is the closed set of extension tags known to this package.
type Kind uint8

const (
	KindTransferFee    Kind = 1
	KindLabel          Kind = 2
	KindCloseAuthority Kind = 3
	KindInterestRate   Kind = 4
)

// Kinds lists every known kind in tag order.
var Kinds = []Kind{KindTransferFee, KindLabel, KindCloseAuthority, KindInterestRate}

// Byte returns the raw tag.
func (k Kind) Byte() uint8 { return uint8(k) }

// FromByte decodes a raw tag, reporting false for tags this package does
// not define.
func (Kind) FromByte(b uint8) (Kind, bool) {
	switch k := Kind(b); k {
	case KindTransferFee, KindLabel, KindCloseAuthority, KindInterestRate:
		return k, true
	default:
		return 0, false
	}
}

func (k Kind) String() string {
	switch k {
	case KindTransferFee:
		return "transfer-fee"
	case KindLabel:
		return "label"
	case KindCloseAuthority:
		return "close-authority"
	case KindInterestRate:
		return "interest-rate"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind accepts a kind's name or its decimal tag.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if s == k.String() || s == fmt.Sprint(uint8(k)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("tokenext: unknown extension kind %q", s)
}
