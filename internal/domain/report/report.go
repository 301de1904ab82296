package report

import (
	"context"

	"github.com/shopspring/decimal"
)

type MethodTotal struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
	Count  int64           `json:"count"`
}

type BarberTotal struct {
	BarberID uint            `json:"barber_id"`
	Barber   string          `json:"barber"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

type ServiceCount struct {
	ServiceID uint   `json:"service_id"`
	Service   string `json:"service"`
	Count     int64  `json:"count"`
}

type DayTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// Repository runs read-only aggregations. Dates are inclusive "2006-01-02" bounds.
type Repository interface {
	// PaymentsByMethod groups payments collected on date.
	PaymentsByMethod(ctx context.Context, date string) ([]MethodTotal, error)

	// PaidByBarber sums the totals of paid appointments dated within the range.
	PaidByBarber(ctx context.Context, from, to string) ([]BarberTotal, error)

	// TopServices counts paid appointments per service, most frequent first.
	TopServices(ctx context.Context, limit int) ([]ServiceCount, error)

	// PaymentsByDay sums payments per collection day within the range.
	PaymentsByDay(ctx context.Context, from, to string) ([]DayTotal, error)

	SalesOn(ctx context.Context, date string) (decimal.Decimal, error)

	// ActiveAppointmentsOn counts pending and paid appointments dated on date.
	ActiveAppointmentsOn(ctx context.Context, date string) (int64, error)
}
