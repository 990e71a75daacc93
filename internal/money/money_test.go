package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUpToTwoPlaces(t *testing.T) {
	cases := map[string]string{
		"1.005":   "1.01",
		"1.004":   "1",
		"2.675":   "2.68",
		"-1.005":  "-1.01",
		"10":      "10",
		"0.999":   "1",
		"26.8301": "26.83",
	}
	for input, expected := range cases {
		got := Round(decimal.RequireFromString(input))
		assert.True(t, got.Equal(decimal.RequireFromString(expected)),
			"Round(%s) = %s, want %s", input, got, expected)
	}
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(decimal.RequireFromString("0.01")))
	assert.False(t, IsPositive(decimal.Zero))
	assert.False(t, IsPositive(decimal.RequireFromString("-5")))
}

func TestFormat(t *testing.T) {
	cases := map[string]string{
		"12.34":  "$12.34",
		"-12.34": "-$12.34",
		"0":      "$0.00",
		"5":      "$5.00",
		"-0.5":   "-$0.50",
		"1.005":  "$1.01",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, Format(decimal.RequireFromString(input)), "Format(%s)", input)
	}
}
