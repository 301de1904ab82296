package payment

import (
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/payment"
)

// RateSource exposes the current exchange rate; Valid is false when unavailable.
type RateSource interface {
	Value() decimal.NullDecimal
}

type TenderInput struct {
	Method    string
	Amount    decimal.Decimal
	Currency  string
	Reference string
}

// parseTenders resolves method and currency names. A tender without a method
// inherits fallback, the payment's own method for single-method payments.
func parseTenders(cur domain.Currencies, fallback domain.Method, in []TenderInput) ([]domain.Tender, error) {
	out := make([]domain.Tender, 0, len(in))

	for _, t := range in {
		method := fallback
		if t.Method != "" {
			m, err := domain.ParseMethod(t.Method)
			if err != nil {
				return nil, err
			}
			method = m
		}

		currency, err := cur.Parse(t.Currency)
		if err != nil {
			return nil, err
		}

		out = append(out, domain.Tender{
			Method:    method,
			Amount:    t.Amount,
			Currency:  currency,
			Reference: t.Reference,
		})
	}

	return out, nil
}
