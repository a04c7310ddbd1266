package tokenext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/types"
)

// Label layout: two NUL-padded Windows-1252 strings.
//
//	0x00  32  name
//	0x20  16  symbol
const (
	labelNameLen   = 32
	labelSymbolLen = 16
	labelLen       = labelNameLen + labelSymbolLen
)

var (
	// ErrLabelTooLong indicates a name or symbol that does not fit its field.
	ErrLabelTooLong = errors.New("tokenext: label field too long")
	// ErrLabelCharset indicates a rune Windows-1252 cannot represent, or an
	// embedded NUL.
	ErrLabelCharset = errors.New("tokenext: label not representable in Windows-1252")
)

// Label is a human-readable name and ticker symbol. The zero value is the
// empty label; any other value comes from NewLabel or Unpack, so every
// Label encodes losslessly.
type Label struct {
	name   string
	symbol string
}

// NewLabel validates that name and symbol encode into their fixed fields.
func NewLabel(name, symbol string) (Label, error) {
	if err := checkField(name, labelNameLen); err != nil {
		return Label{}, fmt.Errorf("name: %w", err)
	}
	if err := checkField(symbol, labelSymbolLen); err != nil {
		return Label{}, fmt.Errorf("symbol: %w", err)
	}
	return Label{name: name, symbol: symbol}, nil
}

// Name returns the token name.
func (l Label) Name() string { return l.name }

// Symbol returns the ticker symbol.
func (l Label) Symbol() string { return l.symbol }

func checkField(s string, n int) error {
	enc, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrLabelCharset, s)
	}
	if len(enc) > n {
		return fmt.Errorf("%w: %d > %d bytes", ErrLabelTooLong, len(enc), n)
	}
	if bytes.IndexByte([]byte(enc), 0) >= 0 {
		return fmt.Errorf("%w: embedded NUL", ErrLabelCharset)
	}
	return nil
}

func (Label) ExtType() uint8 { return KindLabel.Byte() }
func (Label) ExtLen() uint16 { return labelLen }

func (l Label) Pack() []byte {
	out := make([]byte, labelLen)
	putField(out[:labelNameLen], l.name)
	putField(out[labelNameLen:], l.symbol)
	return out
}

func putField(dst []byte, s string) {
	raw, _ := charmap.Windows1252.NewEncoder().String(s)
	copy(dst, raw)
}

// Unpack decodes a label. A field with bytes after its NUL terminator, or
// one that does not decode to representable text, is rejected.
func (l *Label) Unpack(b []byte) error {
	if err := stateext.CheckLen(b, labelLen); err != nil {
		return err
	}
	name, err := getField(b[:labelNameLen])
	if err != nil {
		return fmt.Errorf("name: %w", err)
	}
	symbol, err := getField(b[labelNameLen:])
	if err != nil {
		return fmt.Errorf("symbol: %w", err)
	}
	l.name, l.symbol = name, symbol
	return nil
}

func getField(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		if bytes.Count(b[i:], []byte{0}) != len(b)-i {
			return "", types.ErrInvalidAccountData.With(errors.New("label field has bytes after NUL"))
		}
		b = b[:i]
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", types.ErrInvalidAccountData.With(err)
	}
	s := string(out)
	if err := checkField(s, len(b)); err != nil {
		return "", types.ErrInvalidAccountData.With(err)
	}
	return s, nil
}

// MarshalJSON renders the label as {"Name":..., "Symbol":...}.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name   string
		Symbol string
	}{l.name, l.symbol})
}
