package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_ConversionFactor(t *testing.T) {
	cases := []struct {
		from     Unit
		to       Unit
		expected string
	}{
		{Unit_Gallon, Unit_Quart, "4"},
		{Unit_Gallon, Unit_Pint, "8"},
		{Unit_Gallon, Unit_FlOz, "128"},
		{Unit_FlOz, Unit_Gallon, "0.0078125"},
		{Unit_Quart, Unit_Pint, "2"},
		{Unit_Pound, Unit_DryOz, "16"},
		{Unit_DryOz, Unit_Pound, "0.0625"},
	}

	for _, tc := range cases {
		factor, err := ConversionFactor(tc.from, tc.to)
		require.NoError(t, err)
		expected, err := decimal.NewFromString(tc.expected)
		require.NoError(t, err)
		require.True(t, expected.Equal(factor),
			"%s -> %s: expected %s, got %s", tc.from, tc.to, tc.expected, factor)
	}
}

func Test_ConversionFactor_crossFamily(t *testing.T) {
	_, err := ConversionFactor(Unit_Gallon, Unit_Pound)
	require.Error(t, err)

	_, err = ConversionFactor(Unit_DryOz, Unit_FlOz)
	require.Error(t, err)
}
