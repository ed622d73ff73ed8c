package dataset

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Refresher warms the loader cache on a cron schedule so the first request
// after a dataset update does not pay the full parse cost. It is optional;
// without it the cache is filled lazily on first use.
type Refresher struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// StartRefresher schedules periodic cache refreshes using a standard cron
// expression (e.g. "*/15 * * * *"). The returned Refresher must be stopped
// during shutdown.
func StartRefresher(loader *Loader, schedule string, logger *slog.Logger) (*Refresher, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		count := loader.Refresh(context.Background())
		logger.Info("dataset cache refreshed",
			slog.String("schedule", schedule),
			slog.Int("entities", count))
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return &Refresher{cron: c, logger: logger}, nil
}

// Stop halts the schedule and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}
