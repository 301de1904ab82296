package report

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/archive"
	"github.com/BruksfildServices01/barber-pos/internal/audit"
	domain "github.com/BruksfildServices01/barber-pos/internal/domain/report"
	"github.com/BruksfildServices01/barber-pos/internal/httperr"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
)

// Closing is the cash count of one day, per payment method.
type Closing struct {
	Date    string               `json:"date"`
	Methods []domain.MethodTotal `json:"methods"`
	Total   decimal.Decimal      `json:"total"`
	Count   int64                `json:"count"`
}

type DailyClosing struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewDailyClosing(repo domain.Repository, clock timezone.Clock) *DailyClosing {
	return &DailyClosing{repo: repo, clock: clock}
}

// Execute totals the payments collected on date; empty date means today.
func (uc *DailyClosing) Execute(ctx context.Context, date string) (*Closing, error) {
	date, err := dateOrToday(date, uc.clock)
	if err != nil {
		return nil, err
	}

	methods, err := uc.repo.PaymentsByMethod(ctx, date)
	if err != nil {
		return nil, httperr.Storage(err)
	}

	c := &Closing{Date: date, Methods: methods, Total: decimal.Zero}
	for _, m := range methods {
		c.Total = c.Total.Add(m.Total)
		c.Count += m.Count
	}
	return c, nil
}

// ======================================================
// ARCHIVE
// ======================================================

type ArchivedClosing struct {
	Closing *Closing `json:"closing"`
	Key     string   `json:"key"`
}

// ArchiveClosing uploads the day's closing as CSV. A nil store means archiving
// is not configured.
type ArchiveClosing struct {
	closing *DailyClosing
	store   archive.Store
	audit   *audit.Dispatcher
}

func NewArchiveClosing(
	closing *DailyClosing,
	store archive.Store,
	audit *audit.Dispatcher,
) *ArchiveClosing {
	return &ArchiveClosing{
		closing: closing,
		store:   store,
		audit:   audit,
	}
}

func (uc *ArchiveClosing) Execute(ctx context.Context, date string) (*ArchivedClosing, error) {
	if uc.store == nil {
		return nil, httperr.ErrBusiness(httperr.CodeArchiveDisabled)
	}

	c, err := uc.closing.Execute(ctx, date)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(c.Methods)+1)
	for _, m := range c.Methods {
		rows = append(rows, []string{m.Method, strconv.FormatInt(m.Count, 10), m.Total.StringFixed(2)})
	}
	rows = append(rows, []string{"TOTAL", strconv.FormatInt(c.Count, 10), c.Total.StringFixed(2)})

	body, err := archive.CSV([]string{"method", "count", "total"}, rows)
	if err != nil {
		return nil, err
	}

	key, err := uc.store.Put(ctx, fmt.Sprintf("closing-%s.csv", c.Date), body, archive.ContentTypeCSV)
	if err != nil {
		return nil, fmt.Errorf("archive closing %s: %w", c.Date, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionClosingArchived,
		Entity:   "closing",
		Metadata: map[string]any{"date": c.Date, "key": key},
	})

	return &ArchivedClosing{Closing: c, Key: key}, nil
}
