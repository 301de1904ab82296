package payment

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

// Tolerance absorbs rounding when comparing tendered and due amounts.
var Tolerance = decimal.New(1, -2)

// Balance compares what was tendered against what is due. Local-currency
// figures are only present when a valid rate was supplied.
type Balance struct {
	Due        decimal.Decimal     `json:"due"`
	Tendered   decimal.Decimal     `json:"tendered"`
	Difference decimal.Decimal     `json:"difference"`
	Sufficient bool                `json:"sufficient"`
	DueLocal   decimal.NullDecimal `json:"due_local"`
	DiffLocal  decimal.NullDecimal `json:"difference_local"`
}

// Change is the overage to hand back, zero when the tender falls short.
func (b Balance) Change() decimal.Decimal {
	if b.Difference.IsNegative() {
		return decimal.Zero
	}
	return b.Difference
}

// Shortfall is the amount still missing, zero when the tender covers the total.
func (b Balance) Shortfall() decimal.Decimal {
	if b.Difference.IsNegative() {
		return b.Difference.Neg()
	}
	return decimal.Zero
}

// Settlement is a validated payment ready to persist.
type Settlement struct {
	Balance
	Method    Method
	Reference string
}

type Reconciler struct {
	cur Currencies
}

func NewReconciler(cur Currencies) *Reconciler {
	return &Reconciler{cur: cur}
}

func (r *Reconciler) Currencies() Currencies {
	return r.cur
}

func (r *Reconciler) normalize(tenders []Tender) []Tender {
	out := make([]Tender, len(tenders))
	for i, t := range tenders {
		if t.Currency == "" {
			t.Currency = t.Method.NaturalCurrency(r.cur)
		}
		t.Reference = strings.TrimSpace(t.Reference)
		out[i] = t
	}
	return out
}

// Evaluate converts every tender to base currency and compares the sum to due.
// It does not enforce reference rules, so it can back a change calculator.
// Mixed is a payment method, never a tender.
func (r *Reconciler) Evaluate(due decimal.Decimal, tenders []Tender, rate Rate) (Balance, error) {
	tenders = r.normalize(tenders)

	total := decimal.Zero
	for _, t := range tenders {
		if t.Method == "" || t.Method == MethodMixed {
			return Balance{}, httperr.ErrBusiness(httperr.CodeInvalidMethod)
		}
		if err := t.validateAmount(r.cur); err != nil {
			return Balance{}, err
		}
		base, err := t.inBase(r.cur, rate)
		if err != nil {
			return Balance{}, err
		}
		total = total.Add(base)
	}

	b := Balance{
		Due:        due,
		Tendered:   total,
		Difference: total.Sub(due),
		Sufficient: total.GreaterThanOrEqual(due.Sub(Tolerance)),
	}
	if ValidRate(rate) {
		b.DueLocal = decimal.NewNullDecimal(due.Mul(rate.Decimal))
		b.DiffLocal = decimal.NewNullDecimal(b.Difference.Mul(rate.Decimal))
	}
	return b, nil
}

// Settle validates a single-method or mixed payment against due.
//
// For a single method, tenders must hold exactly one entry paid with that
// method. For Mixed, every entry is a partial tender with its own method.
func (r *Reconciler) Settle(due decimal.Decimal, method Method, tenders []Tender, rate Rate) (*Settlement, error) {
	tenders = r.normalize(tenders)

	switch {
	case method == MethodMixed:
		if len(tenders) == 0 {
			return nil, httperr.ErrBusiness(httperr.CodeEmptyMixedPayment)
		}
	case method == "":
		return nil, httperr.ErrBusiness(httperr.CodeInvalidMethod)
	default:
		if len(tenders) != 1 || tenders[0].Method != method {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidMethod)
		}
	}

	for _, t := range tenders {
		if err := t.validate(r.cur); err != nil {
			return nil, err
		}
	}

	balance, err := r.Evaluate(due, tenders, rate)
	if err != nil {
		return nil, err
	}
	if !balance.Sufficient {
		return nil, &httperr.InsufficientPaymentError{
			Due:       balance.Due,
			Tendered:  balance.Tendered,
			Shortfall: balance.Shortfall(),
		}
	}

	s := &Settlement{Balance: balance, Method: method}
	if method == MethodMixed {
		s.Reference = MixedReference(tenders)
	} else {
		s.Reference = tenders[0].Reference
	}
	return s, nil
}
