package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"
)

// Refresher runs fetches off the request path and feeds the Tracker.
// Concurrent refreshes share a single network call.
type Refresher struct {
	source  Fetcher
	tracker *Tracker
	log     *slog.Logger
	timeout time.Duration

	inflight singleflight.Group
	cron     *cron.Cron
}

func NewRefresher(source Fetcher, tracker *Tracker, timeout time.Duration, log *slog.Logger) *Refresher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Refresher{
		source:  source,
		tracker: tracker,
		log:     log,
		timeout: timeout,
	}
}

func (r *Refresher) fetch() (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	rate, err := r.source.Fetch(ctx)
	if err != nil {
		r.tracker.Fail(err)
		r.log.Warn("exchange rate fetch failed", "error", err)
		return nil, err
	}

	r.tracker.Update(rate)
	r.log.Info("exchange rate refreshed", "rate", rate.Value.String())
	return rate, nil
}

// Refresh waits for a fetch, joining one already in flight. A cancelled ctx
// stops the wait but not the shared fetch.
func (r *Refresher) Refresh(ctx context.Context) (Rate, error) {
	ch := r.inflight.DoChan("rate", r.fetch)

	select {
	case res := <-ch:
		if res.Err != nil {
			return Rate{}, res.Err
		}
		return res.Val.(Rate), nil
	case <-ctx.Done():
		return Rate{}, ctx.Err()
	}
}

// RefreshAsync fetches in the background and reports the outcome to done, if set.
func (r *Refresher) RefreshAsync(done func(Rate, error)) {
	go func() {
		rate, err := r.Refresh(context.Background())
		if done != nil {
			done(rate, err)
		}
	}()
}

// Start triggers an immediate refresh and then one per cron spec.
func (r *Refresher) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { r.RefreshAsync(nil) }); err != nil {
		return fmt.Errorf("rate refresh schedule %q: %w", spec, err)
	}

	r.cron = c
	c.Start()
	r.RefreshAsync(nil)
	return nil
}

func (r *Refresher) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}
}
