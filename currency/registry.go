package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Well-known currencies of the supported networks.
var (
	USD = Currency{Code: "USD", Precision: 8, Name: "US Dollar", Type: TypeFiat, Symbol: "$"}
	EUR = Currency{Code: "EUR", Precision: 8, Name: "Euro", Type: TypeFiat, Symbol: "€"}
	BTC = Currency{Code: "BTC", Precision: 8, Name: "Bitcoin", Type: TypeCrypto, Symbol: "₿"}

	ETH  = ethereumLike("ETH", "Ether")
	ELLA = ethereumLike("ELLA", "Ellaism Token")
	EWT  = ethereumLike("EWT", "Energy Web Token")
	POA  = ethereumLike("POA", "POA Network Token")
	DAI  = ethereumLike("DAI", "Dai Token")
	TLN  = ethereumLike("TLN", "Trustlines Network Token")
	PAN  = ethereumLike("PAN", "Panvala Token")
	LINK = ethereumLike("LINK", "Link Token")
)

// fractions maps registered fraction names to their base-unit multipliers.
var fractions = map[string]decimal.Decimal{
	"base":    decimal.New(1, 0),
	"wei":     decimal.New(1, -18),
	"gwei":    decimal.New(1, -9),
	"satoshi": decimal.New(1, -8),
}

var registry = map[string]Currency{
	"USD":  USD,
	"EUR":  EUR,
	"BTC":  BTC,
	"ETH":  ETH,
	"ELLA": ELLA,
	"EWT":  EWT,
	"POA":  POA,
	"DAI":  DAI,
	"TLN":  TLN,
	"PAN":  PAN,
	"LINK": LINK,
}

// ethereumLike builds an ethereum-style token currency with 18 decimals.
func ethereumLike(code, name string) Currency {
	return Currency{Code: code, Precision: 18, Name: name, Type: TypeCrypto}
}

// FromCode looks up a registered currency by its code, case-insensitively.
func FromCode(code string) (Currency, error) {
	c, ok := registry[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}

	return c, nil
}
