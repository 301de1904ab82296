package payment

import (
	"context"

	"github.com/shopspring/decimal"

	appointment "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/payment"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

type QuoteInput struct {
	// AppointmentID selects the amount due; when 0, Due is used as given.
	AppointmentID uint
	Due           decimal.Decimal
	Tenders       []TenderInput
}

type Quote struct {
	domain.Balance
	Change    decimal.Decimal     `json:"change"`
	Shortfall decimal.Decimal     `json:"shortfall"`
	Rate      decimal.NullDecimal `json:"rate"`
}

// QuotePayment is the change calculator: the payment math without persisting.
type QuotePayment struct {
	appointments appointment.Repository
	reconciler   *domain.Reconciler
	rates        RateSource
}

func NewQuotePayment(
	appointments appointment.Repository,
	reconciler *domain.Reconciler,
	rates RateSource,
) *QuotePayment {
	return &QuotePayment{
		appointments: appointments,
		reconciler:   reconciler,
		rates:        rates,
	}
}

func (uc *QuotePayment) Execute(ctx context.Context, in QuoteInput) (*Quote, error) {
	due := in.Due
	if in.AppointmentID != 0 {
		ap, err := uc.appointments.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
		}
		due = ap.Total
	}
	if due.IsNegative() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAmount)
	}

	tenders, err := parseTenders(uc.reconciler.Currencies(), domain.MethodCashBase, in.Tenders)
	if err != nil {
		return nil, err
	}

	rate := uc.rates.Value()
	balance, err := uc.reconciler.Evaluate(due, tenders, rate)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Balance:   balance,
		Change:    balance.Change(),
		Shortfall: balance.Shortfall(),
		Rate:      rate,
	}, nil
}
