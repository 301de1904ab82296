package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/audit"
	appointment "github.com/BruksfildServices01/barber-pos/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/payment"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/models"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

type RegisterPaymentInput struct {
	AppointmentID uint
	Method        string
	Tenders       []TenderInput
}

// Receipt is what the cashier shows after collecting.
type Receipt struct {
	Payment     models.Payment      `json:"payment"`
	Due         decimal.Decimal     `json:"due"`
	Tendered    decimal.Decimal     `json:"tendered"`
	Change      decimal.Decimal     `json:"change"`
	ChangeLocal decimal.NullDecimal `json:"change_local"`
	Rate        decimal.NullDecimal `json:"rate"`
}

type RegisterPayment struct {
	appointments appointment.Repository
	payments     domain.Repository
	reconciler   *domain.Reconciler
	rates        RateSource
	clock        timezone.Clock
	audit        *audit.Dispatcher
}

func NewRegisterPayment(
	appointments appointment.Repository,
	payments domain.Repository,
	reconciler *domain.Reconciler,
	rates RateSource,
	clock timezone.Clock,
	audit *audit.Dispatcher,
) *RegisterPayment {
	return &RegisterPayment{
		appointments: appointments,
		payments:     payments,
		reconciler:   reconciler,
		rates:        rates,
		clock:        clock,
		audit:        audit,
	}
}

func (uc *RegisterPayment) Execute(
	ctx context.Context,
	in RegisterPaymentInput,
) (*Receipt, error) {

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	method, err := domain.ParseMethod(in.Method)
	if err != nil {
		return nil, err
	}

	fallback := method
	if method == domain.MethodMixed {
		fallback = ""
	}
	tenders, err := parseTenders(uc.reconciler.Currencies(), fallback, in.Tenders)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Appointment must still be open
	// --------------------------------------------------
	ap, err := uc.appointments.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
	}
	if err := appointment.CanPay(appointment.Status(ap.Status)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Reconcile tenders against the frozen total
	// --------------------------------------------------
	rate := uc.rates.Value()
	settlement, err := uc.reconciler.Settle(ap.Total, method, tenders, rate)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Payment + status change, atomically
	// --------------------------------------------------
	now := uc.clock.Now()
	p := &models.Payment{
		AppointmentID: ap.ID,
		Amount:        ap.Total,
		Tendered:      settlement.Tendered.Round(2),
		Method:        string(settlement.Method),
		Reference:     settlement.Reference,
		PaidOn:        timezone.DateOf(now),
	}

	if err := uc.payments.RegisterPayment(ctx, p, now); err != nil {
		return nil, httperr.Lookup(err, httperr.CodeAppointmentNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPaymentRegistered,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"method": p.Method,
			"amount": p.Amount.StringFixed(2),
		},
	})

	receipt := &Receipt{
		Payment:  *p,
		Due:      settlement.Due,
		Tendered: settlement.Tendered.Round(2),
		Change:   settlement.Change().Round(2),
		Rate:     rate,
	}
	if domain.ValidRate(rate) {
		receipt.ChangeLocal = decimal.NewNullDecimal(settlement.Change().Mul(rate.Decimal).Round(2))
	}
	return receipt, nil
}
