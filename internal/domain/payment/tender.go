package payment

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

// Tender is one amount handed over by the client.
type Tender struct {
	Method    Method          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	Reference string          `json:"reference"`
}

func (t Tender) validateAmount(cur Currencies) error {
	if !t.Amount.IsPositive() {
		return httperr.ErrBusiness(httperr.CodeInvalidAmount)
	}
	if t.Currency != cur.Base && t.Currency != cur.Local {
		return httperr.ErrBusiness(httperr.CodeInvalidCurrency)
	}
	return nil
}

func (t Tender) validate(cur Currencies) error {
	if t.Method == "" || t.Method == MethodMixed {
		return httperr.ErrBusiness(httperr.CodeInvalidMethod)
	}
	if err := t.validateAmount(cur); err != nil {
		return err
	}
	if t.Method.RequiresReference() && strings.TrimSpace(t.Reference) == "" {
		return httperr.ErrBusiness(httperr.CodeMissingReference)
	}
	return nil
}

func (t Tender) inBase(cur Currencies, rate Rate) (decimal.Decimal, error) {
	if t.Currency == cur.Base {
		return t.Amount, nil
	}
	if !ValidRate(rate) {
		return decimal.Zero, httperr.ErrBusiness(httperr.CodeRateUnavailable)
	}
	return t.Amount.Div(rate.Decimal), nil
}

func (t Tender) describe() string {
	ref := "NoRef"
	if r := strings.TrimSpace(t.Reference); r != "" {
		ref = "Ref:" + r
	}
	return fmt.Sprintf("[%s %s %s %s]", t.Method, t.Amount.StringFixed(2), t.Currency, ref)
}

// MixedReference encodes every partial tender, in order, into a single reference.
func MixedReference(tenders []Tender) string {
	parts := make([]string, 0, len(tenders))
	for _, t := range tenders {
		parts = append(parts, t.describe())
	}
	return "MIXED: " + strings.Join(parts, " + ")
}
