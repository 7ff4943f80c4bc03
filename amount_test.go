package coffer_test

import (
	"math/big"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxAmount is 2^127 - 1, the largest value a signed 128 bit integer holds.
func maxAmount() sdkmath.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 127)
	return sdkmath.NewIntFromBigInt(max.Sub(max, big.NewInt(1)))
}

func TestValidateAmount(t *testing.T) {
	cases := map[string]struct {
		amount  sdkmath.Int
		wantErr *errors.Error
	}{
		"zero":           {amount: sdkmath.ZeroInt()},
		"negative":       {amount: sdkmath.NewInt(-5)},
		"max":            {amount: maxAmount()},
		"min":            {amount: maxAmount().Neg()},
		"above max":      {amount: maxAmount().AddRaw(1), wantErr: errors.ErrOverflow},
		"below min":      {amount: maxAmount().Neg().SubRaw(2), wantErr: errors.ErrOverflow},
		"not initalized": {amount: sdkmath.Int{}, wantErr: errors.ErrAmount},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := coffer.ValidateAmount(tc.amount); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestAddSubAmounts(t *testing.T) {
	sum, err := coffer.AddAmounts(sdkmath.NewInt(7), sdkmath.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, "12", sum.String())

	_, err = coffer.AddAmounts(maxAmount(), sdkmath.NewInt(1))
	assert.True(t, errors.ErrOverflow.Is(err))

	diff, err := coffer.SubAmounts(sdkmath.NewInt(7), sdkmath.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, "2", diff.String())

	_, err = coffer.SubAmounts(maxAmount().Neg(), sdkmath.NewInt(2))
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestMulDivFloor(t *testing.T) {
	cases := map[string]struct {
		amount  sdkmath.Int
		num     uint64
		den     uint64
		want    string
		wantErr *errors.Error
	}{
		"exact half":         {amount: sdkmath.NewInt(3000000), num: 5000, den: 10000, want: "1500000"},
		"truncates":          {amount: sdkmath.NewInt(10), num: 3333, den: 10000, want: "3"},
		"zero share":         {amount: sdkmath.NewInt(10), num: 0, den: 10000, want: "0"},
		"max times full":     {amount: maxAmount(), num: 10000, den: 10000, want: maxAmount().String()},
		"zero denominator":   {amount: sdkmath.NewInt(10), num: 1, den: 0, wantErr: errors.ErrInput},
		"negative amount":    {amount: sdkmath.NewInt(-10), num: 1, den: 2, wantErr: errors.ErrAmount},
		"result exceeds max": {amount: maxAmount(), num: 2, den: 1, wantErr: errors.ErrOverflow},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := coffer.MulDivFloor(tc.amount, tc.num, tc.den)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, tc.want, got.String())
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	a, err := coffer.ParseAmount("10000000")
	require.NoError(t, err)
	assert.True(t, a.Equal(sdkmath.NewInt(10000000)))

	_, err = coffer.ParseAmount("ten")
	assert.True(t, errors.ErrAmount.Is(err))
}
