package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDollars(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{12345678.5, 12345679},
		{12345678.49, 12345678},
		{-2.5, -3},
		{0, 0},
		{math.NaN(), 0},
		{1e19, math.MaxInt64},
		{math.Inf(1), math.MaxInt64},
		{-1e19, math.MinInt64},
		{math.Inf(-1), math.MinInt64},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RoundDollars(tc.in), "in %v", tc.in)
	}
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "$0", FormatDollars(0))
	assert.Equal(t, "$999", FormatDollars(999))
	assert.Equal(t, "$12,345,678", FormatDollars(12345678))
	assert.Equal(t, "-$1,000", FormatDollars(-1000))
	assert.Equal(t, "-$9,223,372,036,854,775,808", FormatDollars(math.MinInt64))
}

func TestPredictionString(t *testing.T) {
	p := Prediction{Salary: 5000000.4}
	assert.Equal(t, int64(5000000), p.Dollars())
	assert.Equal(t, "$5,000,000", p.String())
}
