package exchange

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-pos/internal/httperr"
)

var ErrRateUnavailable = httperr.ErrBusiness(httperr.CodeRateUnavailable)

type Rate struct {
	Value     decimal.Decimal `json:"value"`
	Source    string          `json:"source"`
	FetchedAt time.Time       `json:"fetched_at"`
	Manual    bool            `json:"manual"`
}

// Status is a snapshot for display. LastError is set when the newest attempt
// failed; Stale is set once the held rate is older than the stale threshold.
type Status struct {
	Rate        *Rate     `json:"rate"`
	Available   bool      `json:"available"`
	Stale       bool      `json:"stale"`
	LastError   string    `json:"last_error,omitempty"`
	LastAttempt time.Time `json:"last_attempt"`
}

// Tracker is the single holder of the current rate. The last good value is
// served until a newer one replaces it, however old it gets.
type Tracker struct {
	mu          sync.RWMutex
	current     *Rate
	lastErr     error
	lastAttempt time.Time
	staleAfter  time.Duration
	now         func() time.Time
}

// NewTracker flags the rate as stale after staleAfter; zero disables the flag.
func NewTracker(staleAfter time.Duration) *Tracker {
	return &Tracker{staleAfter: staleAfter, now: time.Now}
}

func (t *Tracker) Update(r Rate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = &r
	t.lastErr = nil
	t.lastAttempt = t.now()
}

func (t *Tracker) Fail(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastErr = err
	t.lastAttempt = t.now()
}

// Override sets a manually entered rate, used while the source is down.
func (t *Tracker) Override(v decimal.Decimal) (Rate, error) {
	if !v.IsPositive() {
		return Rate{}, httperr.ErrBusiness(httperr.CodeInvalidRate)
	}
	r := Rate{Value: v, Source: "manual", FetchedAt: t.now().UTC(), Manual: true}
	t.Update(r)
	return r, nil
}

func (t *Tracker) stale() bool {
	if t.current == nil || t.staleAfter <= 0 {
		return false
	}
	return t.now().Sub(t.current.FetchedAt) > t.staleAfter
}

func (t *Tracker) Current() (Rate, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.current == nil {
		return Rate{}, ErrRateUnavailable
	}
	return *t.current, nil
}

// Value is the current rate as an optional decimal; never a zero placeholder.
func (t *Tracker) Value() decimal.NullDecimal {
	r, err := t.Current()
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(r.Value)
}

func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := Status{
		Available:   t.current != nil,
		Stale:       t.stale(),
		LastAttempt: t.lastAttempt,
	}
	if t.current != nil {
		r := *t.current
		s.Rate = &r
	}
	if t.lastErr != nil {
		s.LastError = t.lastErr.Error()
	}
	return s
}
