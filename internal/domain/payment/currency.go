package payment

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

type Currency string

// Currencies names the shop's accounting currency and the volatile local one.
type Currencies struct {
	Base  Currency
	Local Currency
}

func NewCurrencies(base, local string) Currencies {
	return Currencies{
		Base:  Currency(strings.ToUpper(base)),
		Local: Currency(strings.ToUpper(local)),
	}
}

// Parse accepts a currency code or the aliases "base" and "local". Empty input
// yields "" so callers can fall back to a method's natural currency.
func (c Currencies) Parse(s string) (Currency, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return "", nil
	case strings.EqualFold(s, "base"), strings.EqualFold(s, string(c.Base)):
		return c.Base, nil
	case strings.EqualFold(s, "local"), strings.EqualFold(s, string(c.Local)):
		return c.Local, nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidCurrency)
}

// Rate is local-currency units per base-currency unit. An invalid rate is
// represented by Valid=false and never by zero.
type Rate = decimal.NullDecimal

func ValidRate(r Rate) bool {
	return r.Valid && r.Decimal.IsPositive()
}

func NewRate(v decimal.Decimal) Rate {
	return decimal.NewNullDecimal(v)
}

var NoRate = Rate{}
