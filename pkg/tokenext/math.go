package tokenext

import "math/bits"

func mul64(a, b uint64) (hi, lo uint64) { return bits.Mul64(a, b) }

// div64 returns ceil((hi<<64|lo) / d), saturating at MaxUint64.
func div64(hi, lo, d uint64) uint64 {
	if hi >= d {
		return ^uint64(0)
	}
	q, r := bits.Div64(hi, lo, d)
	if r != 0 {
		if q == ^uint64(0) {
			return q
		}
		q++
	}
	return q
}
