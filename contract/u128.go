package contract

import (
	"math/big"
	"math/bits"
)

// Checked arithmetic for fund-bearing fields. Nothing here wraps: every
// overflow surfaces as ok=false and the caller maps it to a taxonomy error.

// CheckedAddU64 returns a+b unless the sum leaves 64 bits.
func CheckedAddU64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// CheckedSubU64 returns a-b unless it would go negative.
func CheckedSubU64(a, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, false
	}
	return diff, true
}

// U128 is a 128-bit unsigned intermediate for price and limit math. The wide
// width exists only between a load and a store, persisted fields stay u64.
type U128 struct {
	v *big.Int
}

var u128Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// U128From lifts a u64 into the wide domain.
func U128From(x uint64) U128 {
	return U128{v: new(big.Int).SetUint64(x)}
}

// Mul multiplies and reports overflow past 128 bits.
func (a U128) Mul(b U128) (U128, bool) {
	out := new(big.Int).Mul(a.v, b.v)
	if out.Cmp(u128Max) > 0 {
		return U128{}, false
	}
	return U128{v: out}, true
}

// MulU64 is the common scale-by-constant step.
func (a U128) MulU64(b uint64) (U128, bool) {
	return a.Mul(U128From(b))
}

// Div floor-divides, reporting failure on a zero divisor. Truncation is
// intentional, the buyer never receives rounding in their favor.
func (a U128) Div(b U128) (U128, bool) {
	if b.v.Sign() == 0 {
		return U128{}, false
	}
	return U128{v: new(big.Int).Quo(a.v, b.v)}, true
}

// DivU64 divides by a u64 constant.
func (a U128) DivU64(b uint64) (U128, bool) {
	return a.Div(U128From(b))
}

// ToU64 narrows back, reporting failure when the value does not fit.
func (a U128) ToU64() (uint64, bool) {
	if a.v == nil || !a.v.IsUint64() {
		return 0, false
	}
	return a.v.Uint64(), true
}
