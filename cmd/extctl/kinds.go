package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/joshuapare/stateext/pkg/stateext"
	"github.com/joshuapare/stateext/pkg/tokenext"
	"github.com/joshuapare/stateext/pkg/types"
)

// extFlags holds the per-kind value flags shared by add and update.
type extFlags struct {
	epoch         uint64
	maxFee        uint64
	bps           uint16
	name          string
	symbol        string
	authority     string
	rate          int16
	initializedAt int64
}

func (f *extFlags) register(fs *pflag.FlagSet) {
	fs.Uint64Var(&f.epoch, "epoch", 0, "transfer-fee: epoch the fee takes effect")
	fs.Uint64Var(&f.maxFee, "max-fee", 0, "transfer-fee: maximum fee in base units")
	fs.Uint16Var(&f.bps, "bps", 0, "transfer-fee: fee in basis points")
	fs.StringVar(&f.name, "name", "", "label: token name (Windows-1252, up to 32 bytes)")
	fs.StringVar(&f.symbol, "symbol", "", "label: ticker symbol (up to 16 bytes)")
	fs.StringVar(&f.authority, "authority", "", "close-authority: base58 public key")
	fs.Int16Var(&f.rate, "rate", 0, "interest-rate: basis points per year")
	fs.Int64Var(&f.initializedAt, "initialized-at", 0, "interest-rate: start time in unix seconds")
}

// build turns the flags into the extension value for k.
func (f *extFlags) build(k tokenext.Kind) (stateext.Extension, error) {
	switch k {
	case tokenext.KindTransferFee:
		if f.bps > 10_000 {
			return nil, fmt.Errorf("--bps %d exceeds 10000", f.bps)
		}
		return &tokenext.TransferFee{Epoch: f.epoch, MaximumFee: f.maxFee, BasisPoints: f.bps}, nil
	case tokenext.KindLabel:
		l, err := tokenext.NewLabel(f.name, f.symbol)
		if err != nil {
			return nil, err
		}
		return &l, nil
	case tokenext.KindCloseAuthority:
		if f.authority == "" {
			return nil, fmt.Errorf("close-authority requires --authority")
		}
		pk, err := types.ParsePubkey(f.authority)
		if err != nil {
			return nil, fmt.Errorf("--authority: %w", err)
		}
		return &tokenext.CloseAuthority{Authority: pk}, nil
	case tokenext.KindInterestRate:
		return &tokenext.InterestRate{InitializedAt: f.initializedAt, Rate: f.rate}, nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", k)
	}
}

func addExt(r *stateext.Region, acc, payer stateext.Account, ext stateext.Extension) error {
	switch e := ext.(type) {
	case *tokenext.TransferFee:
		return stateext.Add(r, acc, payer, e)
	case *tokenext.Label:
		return stateext.Add(r, acc, payer, e)
	case *tokenext.CloseAuthority:
		return stateext.Add(r, acc, payer, e)
	case *tokenext.InterestRate:
		return stateext.Add(r, acc, payer, e)
	default:
		return fmt.Errorf("unsupported extension %T", ext)
	}
}

func updateExt(r *stateext.Region, acc stateext.Account, k tokenext.Kind, ext stateext.Extension) error {
	switch e := ext.(type) {
	case *tokenext.TransferFee:
		return stateext.Update(r, acc, k, e)
	case *tokenext.Label:
		return stateext.Update(r, acc, k, e)
	case *tokenext.CloseAuthority:
		return stateext.Update(r, acc, k, e)
	case *tokenext.InterestRate:
		return stateext.Update(r, acc, k, e)
	default:
		return fmt.Errorf("unsupported extension %T", ext)
	}
}

func zeroExt(r *stateext.Region, acc stateext.Account, k tokenext.Kind) error {
	switch k {
	case tokenext.KindTransferFee:
		return stateext.ZeroOut[tokenext.TransferFee](r, acc, k)
	case tokenext.KindLabel:
		return stateext.ZeroOut[tokenext.Label](r, acc, k)
	case tokenext.KindCloseAuthority:
		return stateext.ZeroOut[tokenext.CloseAuthority](r, acc, k)
	case tokenext.KindInterestRate:
		return stateext.ZeroOut[tokenext.InterestRate](r, acc, k)
	default:
		return fmt.Errorf("unsupported kind %s", k)
	}
}

// found is a located extension in a printable shape.
type found struct {
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
	State  string `json:"state"`
	Len    int    `json:"len"`
	Value  any    `json:"value"`
}

func lookup[E any, P stateext.Codec[E]](r *stateext.Region, acc stateext.Account, k tokenext.Kind) (found, bool) {
	info, ok := stateext.Get[E, P](r, acc, k)
	if !ok {
		return found{}, false
	}
	return found{
		Kind:   k.String(),
		Offset: info.Position,
		State:  info.State.String(),
		Len:    len(info.Raw),
		Value:  info.Ext,
	}, true
}

func getExt(r *stateext.Region, acc stateext.Account, k tokenext.Kind) (found, bool) {
	switch k {
	case tokenext.KindTransferFee:
		return lookup[tokenext.TransferFee](r, acc, k)
	case tokenext.KindLabel:
		return lookup[tokenext.Label](r, acc, k)
	case tokenext.KindCloseAuthority:
		return lookup[tokenext.CloseAuthority](r, acc, k)
	case tokenext.KindInterestRate:
		return lookup[tokenext.InterestRate](r, acc, k)
	default:
		return found{}, false
	}
}

// describe renders an extension value as ordered name/value pairs.
func describe(v any) [][2]string {
	switch e := v.(type) {
	case *tokenext.TransferFee:
		return [][2]string{
			{"epoch", fmt.Sprint(e.Epoch)},
			{"maximum_fee", fmt.Sprint(e.MaximumFee)},
			{"basis_points", fmt.Sprint(e.BasisPoints)},
		}
	case *tokenext.Label:
		return [][2]string{{"name", e.Name()}, {"symbol", e.Symbol()}}
	case *tokenext.CloseAuthority:
		return [][2]string{{"authority", e.Authority.String()}}
	case *tokenext.InterestRate:
		return [][2]string{
			{"initialized_at", fmt.Sprint(e.InitializedAt)},
			{"rate", fmt.Sprint(e.Rate)},
		}
	default:
		return nil
	}
}
