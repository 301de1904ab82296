package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-pos/internal/domain/report"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

const weekDays = 7

// KPIs are the figures on the home screen.
type KPIs struct {
	Date               string          `json:"date"`
	Sales              decimal.Decimal `json:"sales"`
	ActiveAppointments int64           `json:"active_appointments"`
}

type MonthPerformance struct {
	Month   string               `json:"month"`
	Barbers []domain.BarberTotal `json:"barbers"`
}

// Dashboard serves the home screen charts.
type Dashboard struct {
	repo     domain.Repository
	clock    timezone.Clock
	topLimit int
}

func NewDashboard(repo domain.Repository, clock timezone.Clock, topLimit int) *Dashboard {
	if topLimit <= 0 {
		topLimit = 5
	}
	return &Dashboard{repo: repo, clock: clock, topLimit: topLimit}
}

func (uc *Dashboard) TopServices(ctx context.Context) ([]domain.ServiceCount, error) {
	top, err := uc.repo.TopServices(ctx, uc.topLimit)
	if err != nil {
		return nil, httperr.Storage(err)
	}
	return top, nil
}

// WeeklyRevenue returns the last seven days ending today, oldest first.
// Days without payments are reported as zero.
func (uc *Dashboard) WeeklyRevenue(ctx context.Context) ([]domain.DayTotal, error) {
	now := uc.clock.Now()
	from := timezone.DateOf(now.AddDate(0, 0, -(weekDays - 1)))
	to := timezone.DateOf(now)

	rows, err := uc.repo.PaymentsByDay(ctx, from, to)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	byDay := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		byDay[r.Date] = r.Total
	}

	out := make([]domain.DayTotal, 0, weekDays)
	for i := weekDays - 1; i >= 0; i-- {
		day := timezone.DateOf(now.AddDate(0, 0, -i))
		total, ok := byDay[day]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, domain.DayTotal{Date: day, Total: total})
	}
	return out, nil
}

// BarberMonth sums paid appointments per barber over the current calendar month.
func (uc *Dashboard) BarberMonth(ctx context.Context) (*MonthPerformance, error) {
	now := uc.clock.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	totals, err := uc.repo.PaidByBarber(ctx, timezone.DateOf(first), timezone.DateOf(last))
	if err != nil {
		return nil, httperr.Storage(err)
	}

	return &MonthPerformance{
		Month:   first.Format("2006-01"),
		Barbers: totals,
	}, nil
}

func (uc *Dashboard) KPIs(ctx context.Context) (*KPIs, error) {
	today := timezone.DateOf(uc.clock.Now())

	sales, err := uc.repo.SalesOn(ctx, today)
	if err != nil {
		return nil, httperr.Storage(err)
	}
	active, err := uc.repo.ActiveAppointmentsOn(ctx, today)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	return &KPIs{
		Date:               today,
		Sales:              sales,
		ActiveAppointments: active,
	}, nil
}

func dateOrToday(date string, clock timezone.Clock) (string, error) {
	if date == "" {
		return timezone.DateOf(clock.Now()), nil
	}
	if _, err := timezone.ParseDate(date); err != nil {
		return "", httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	return date, nil
}
