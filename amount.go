package coffer

import (
	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer/errors"
)

// MaxAmountBits is the bit length limit of any amount held by the ledger.
// Amounts are signed 128 bit integers, so the magnitude must fit in 127 bits.
const MaxAmountBits = 127

// ValidateAmount returns an error if the amount is not set or does not fit
// into a signed 128 bit integer.
func ValidateAmount(a sdkmath.Int) error {
	if a.IsNil() {
		return errors.Wrap(errors.ErrAmount, "amount not set")
	}
	if a.BigInt().BitLen() > MaxAmountBits {
		return errors.Wrapf(errors.ErrOverflow, "amount %s exceeds %d bits", a, MaxAmountBits)
	}
	return nil
}

// ParseAmount decodes the decimal representation of an amount.
func ParseAmount(s string) (sdkmath.Int, error) {
	a, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, errors.Wrapf(errors.ErrAmount, "cannot parse %q", s)
	}
	if err := ValidateAmount(a); err != nil {
		return sdkmath.Int{}, err
	}
	return a, nil
}

// AddAmounts returns a + b, failing when the result leaves the 128 bit range.
func AddAmounts(a, b sdkmath.Int) (sdkmath.Int, error) {
	if err := ValidateAmount(a); err != nil {
		return sdkmath.Int{}, err
	}
	if err := ValidateAmount(b); err != nil {
		return sdkmath.Int{}, err
	}
	sum := a.Add(b)
	if err := ValidateAmount(sum); err != nil {
		return sdkmath.Int{}, err
	}
	return sum, nil
}

// SubAmounts returns a - b, failing when the result leaves the 128 bit range.
func SubAmounts(a, b sdkmath.Int) (sdkmath.Int, error) {
	if err := ValidateAmount(a); err != nil {
		return sdkmath.Int{}, err
	}
	if err := ValidateAmount(b); err != nil {
		return sdkmath.Int{}, err
	}
	diff := a.Sub(b)
	if err := ValidateAmount(diff); err != nil {
		return sdkmath.Int{}, err
	}
	return diff, nil
}

// MulDivFloor returns floor(a * num / den) for a non negative amount. The
// intermediate product is not bounded, only the result is.
func MulDivFloor(a sdkmath.Int, num, den uint64) (sdkmath.Int, error) {
	if den == 0 {
		return sdkmath.Int{}, errors.Wrap(errors.ErrInput, "zero denominator")
	}
	if err := ValidateAmount(a); err != nil {
		return sdkmath.Int{}, err
	}
	if a.IsNegative() {
		return sdkmath.Int{}, errors.Wrapf(errors.ErrAmount, "negative amount %s", a)
	}
	res := a.Mul(sdkmath.NewIntFromUint64(num)).Quo(sdkmath.NewIntFromUint64(den))
	if err := ValidateAmount(res); err != nil {
		return sdkmath.Int{}, err
	}
	return res, nil
}
