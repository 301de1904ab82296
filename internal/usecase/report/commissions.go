package report

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/report"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

type BarberCommission struct {
	domain.BarberTotal
	Commission decimal.Decimal `json:"commission"`
}

type Commissions struct {
	From    string             `json:"from"`
	To      string             `json:"to"`
	Rate    decimal.Decimal    `json:"rate"`
	Barbers []BarberCommission `json:"barbers"`
	// Payout is the sum of every barber's commission.
	Payout decimal.Decimal `json:"payout"`
}

// ComputeCommissions pays each barber a share of the paid appointments dated in range.
type ComputeCommissions struct {
	repo domain.Repository
	rate decimal.Decimal
}

func NewComputeCommissions(repo domain.Repository, rate decimal.Decimal) *ComputeCommissions {
	return &ComputeCommissions{repo: repo, rate: rate}
}

func (uc *ComputeCommissions) Execute(ctx context.Context, from, to string) (*Commissions, error) {
	fromDay, err := timezone.ParseDate(from)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	toDay, err := timezone.ParseDate(to)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	if toDay.Before(fromDay) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	totals, err := uc.repo.PaidByBarber(ctx, from, to)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	out := &Commissions{
		From:    from,
		To:      to,
		Rate:    uc.rate,
		Barbers: make([]BarberCommission, 0, len(totals)),
		Payout:  decimal.Zero,
	}
	for _, bt := range totals {
		c := bt.Total.Mul(uc.rate).Round(2)
		out.Barbers = append(out.Barbers, BarberCommission{BarberTotal: bt, Commission: c})
		out.Payout = out.Payout.Add(c)
	}
	return out, nil
}
