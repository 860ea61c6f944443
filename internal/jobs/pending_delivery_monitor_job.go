package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	DefaultMonitorSchedule = "0 * * * * *"
	DefaultStaleAfter      = 10 * time.Minute
)

// PendingDeliveryCounter is the slice of the delivery repository the monitor reads.
type PendingDeliveryCounter interface {
	CountPendingSince(ctx context.Context, cutoff time.Time) (int64, error)
}

// PendingDeliveryMonitorJob periodically reports deliveries that have waited longer than
// staleAfter for a courier. It never changes state.
type PendingDeliveryMonitorJob struct {
	counter    PendingDeliveryCounter
	schedule   string
	staleAfter time.Duration
	timeout    time.Duration
	now        func() time.Time
	cron       *cron.Cron
	logger     *slog.Logger
}

func NewPendingDeliveryMonitorJob(
	counter PendingDeliveryCounter,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *PendingDeliveryMonitorJob {
	if schedule == "" {
		schedule = DefaultMonitorSchedule
	}
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &PendingDeliveryMonitorJob{
		counter:    counter,
		schedule:   schedule,
		staleAfter: staleAfter,
		timeout:    10 * time.Second,
		now:        time.Now,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_delivery_monitor_job"),
	}
}

// Start registers the check on the schedule and starts the scheduler.
func (j *PendingDeliveryMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending delivery monitor started",
		"schedule", j.schedule, "stale_after", j.staleAfter.String())
	return nil
}

// Run performs one check and returns the number of stale deliveries, or -1 when the
// count could not be read.
func (j *PendingDeliveryMonitorJob) Run(ctx context.Context) int64 {
	cutoff := j.now().UTC().Add(-j.staleAfter)
	stale, err := j.counter.CountPendingSince(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending delivery monitor failed", "error", err)
		return -1
	}

	if stale > 0 {
		j.logger.WarnContext(ctx, "Deliveries waiting for a courier",
			"count", stale, "older_than", cutoff.Format(time.RFC3339))
	}
	return stale
}

// Stop stops the scheduler and waits for a running check to finish.
func (j *PendingDeliveryMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending delivery monitor stopped")
}
