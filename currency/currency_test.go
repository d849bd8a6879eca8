package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCode(t *testing.T) {
	eth, err := FromCode("eth")
	require.NoError(t, err)
	require.Equal(t, ETH, eth)
	require.Equal(t, int32(18), eth.Precision)

	_, err = FromCode("DOGE")
	require.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestCurrency_SymbolOrCode(t *testing.T) {
	require.Equal(t, "$", USD.SymbolOrCode())
	require.Equal(t, "ETH", ETH.SymbolOrCode())
}

func TestCurrency_MinimalValue(t *testing.T) {
	require.True(t, BTC.MinimalValue().Equal(decimal.RequireFromString("0.00000001")))
	require.True(t, ETH.MinimalValue().Equal(decimal.RequireFromString("0.000000000000000001")))
}

func TestCurrency_AmountQuantizes(t *testing.T) {
	a := BTC.Amount(decimal.RequireFromString("1.123456789"))

	require.True(t, a.Value.Equal(decimal.RequireFromString("1.12345679")),
		"got %s", a.Value)
}

func TestCurrency_ZeroAndOne(t *testing.T) {
	require.True(t, ETH.Zero().Value.IsZero())
	require.True(t, ETH.One().Value.Equal(decimal.New(1, 0)))
	require.Equal(t, "1 ETH", ETH.One().String())
}

func TestAmount_Arithmetic(t *testing.T) {
	a := ETH.Amount(decimal.RequireFromString("1.5"))
	b := ETH.Amount(decimal.RequireFromString("0.5"))

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Value.Equal(decimal.New(2, 0)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Value.Equal(decimal.New(1, 0)))

	require.True(t, a.Mul(decimal.New(2, 0)).Value.Equal(decimal.New(3, 0)))
	require.True(t, a.Div(decimal.New(3, 0)).Value.Equal(decimal.RequireFromString("0.5")))
}

func TestAmount_CurrencyMismatch(t *testing.T) {
	a := ETH.Amount(decimal.New(1, 0))
	b := DAI.Amount(decimal.New(1, 0))

	_, err := a.Add(b)
	require.ErrorIs(t, err, ErrCurrencyMismatch)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestFractions(t *testing.T) {
	tests := []struct {
		name     string
		currency Currency
		fraction string
		value    string
		expected string
	}{
		{name: "gwei", currency: ETH, fraction: "gwei", value: "25", expected: "0.000000025"},
		{name: "wei", currency: ETH, fraction: "wei", value: "1000000000000000000", expected: "1"},
		{name: "satoshi", currency: BTC, fraction: "satoshi", value: "100000000", expected: "1"},
		{name: "base", currency: ETH, fraction: "base", value: "2", expected: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := FromFraction(decimal.RequireFromString(tt.value), tt.currency, tt.fraction)
			require.NoError(t, err)
			assert.True(t, a.Value.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, expected %s", a.Value, tt.expected)

			// round trip back into the fraction
			back, err := a.AsFraction(tt.fraction)
			require.NoError(t, err)
			assert.True(t, back.Equal(decimal.RequireFromString(tt.value)),
				"got %s, expected %s", back, tt.value)
		})
	}
}

func TestFractions_Unknown(t *testing.T) {
	_, err := ETH.Fraction("lovelace")
	require.ErrorIs(t, err, ErrUnknownFraction)

	_, err = FromFraction(decimal.New(1, 0), ETH, "lovelace")
	require.ErrorIs(t, err, ErrUnknownFraction)

	_, err = ETH.One().AsFraction("lovelace")
	require.ErrorIs(t, err, ErrUnknownFraction)
}
