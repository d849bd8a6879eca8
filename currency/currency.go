package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Type distinguishes crypto assets from fiat reference currencies.
type Type string

const (
	TypeCrypto Type = "CRYPTO"
	TypeFiat   Type = "FIAT"
)

var (
	// ErrUnknownCurrency is returned when a currency code is not registered.
	ErrUnknownCurrency = errors.New("unknown currency code")
	// ErrUnknownFraction is returned when a fraction name is not registered.
	ErrUnknownFraction = errors.New("unknown currency fraction")
	// ErrCurrencyMismatch is returned when two amounts of different currencies
	// are combined.
	ErrCurrencyMismatch = errors.New("amounts have different currencies")
)

// Currency describes a unit of account used on one of the analytics networks.
type Currency struct {
	Code      string
	Precision int32
	Name      string
	Type      Type
	Symbol    string
}

func (c Currency) String() string {
	return c.Code
}

// SymbolOrCode returns the display symbol, falling back to the code.
func (c Currency) SymbolOrCode() string {
	if c.Symbol != "" {
		return c.Symbol
	}

	return c.Code
}

// MinimalValue returns the smallest value representable by the currency.
func (c Currency) MinimalValue() decimal.Decimal {
	return decimal.New(1, -c.Precision)
}

// Amount wraps a decimal value into an amount of the currency, quantized to
// the currency's precision.
func (c Currency) Amount(value decimal.Decimal) Amount {
	return Amount{Currency: c, Value: value.Round(c.Precision)}
}

// Zero returns zero units of the currency.
func (c Currency) Zero() Amount {
	return c.Amount(decimal.Zero)
}

// One returns one unit of the currency.
func (c Currency) One() Amount {
	return c.Amount(decimal.New(1, 0))
}

// Fraction returns a registered fraction of the currency, e.g. "wei" for ETH.
func (c Currency) Fraction(name string) (Fraction, error) {
	multiplier, ok := fractions[name]
	if !ok {
		return Fraction{}, fmt.Errorf("%w: %s", ErrUnknownFraction, name)
	}

	return Fraction{Currency: c, Name: name, Multiplier: multiplier}, nil
}

// Fraction is a named subdivision of a currency. Consider it a crypto-specific
// fraction naming without a fixed tie to one currency, like "kilo" or "milli"
// in physics.
type Fraction struct {
	Currency   Currency
	Name       string
	Multiplier decimal.Decimal
}

func (f Fraction) String() string {
	return f.Name
}

// Amount converts a value expressed in the fraction into a currency amount.
func (f Fraction) Amount(value decimal.Decimal) Amount {
	return f.Currency.Amount(value.Mul(f.Multiplier))
}

// Amount is a quantity of one currency. The value is always quantized to the
// currency's precision.
type Amount struct {
	Currency Currency
	Value    decimal.Decimal
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Value, a.Currency)
}

// Add returns the sum of both amounts. The currencies must match.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.Currency.Code != b.Currency.Code {
		return Amount{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, a.Currency, b.Currency)
	}

	return a.Currency.Amount(a.Value.Add(b.Value)), nil
}

// Sub returns the difference of both amounts. The currencies must match.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Currency.Code != b.Currency.Code {
		return Amount{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, a.Currency, b.Currency)
	}

	return a.Currency.Amount(a.Value.Sub(b.Value)), nil
}

// Mul scales the amount by a decimal factor.
func (a Amount) Mul(factor decimal.Decimal) Amount {
	return a.Currency.Amount(a.Value.Mul(factor))
}

// Div divides the amount by a decimal divisor.
func (a Amount) Div(divisor decimal.Decimal) Amount {
	return a.Currency.Amount(a.Value.Div(divisor))
}

// AsFraction expresses the amount in the given fraction, e.g. an ETH amount
// in wei.
func (a Amount) AsFraction(name string) (decimal.Decimal, error) {
	fraction, err := a.Currency.Fraction(name)
	if err != nil {
		return decimal.Zero, err
	}

	return a.Value.Div(fraction.Multiplier), nil
}

// FromFraction builds a currency amount from a value expressed in one of the
// currency's fractions, e.g. 25 gwei of ETH.
func FromFraction(value decimal.Decimal, c Currency, name string) (Amount, error) {
	fraction, err := c.Fraction(name)
	if err != nil {
		return Amount{}, err
	}

	return fraction.Amount(value), nil
}
