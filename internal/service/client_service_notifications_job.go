package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/workers"
)

// DefaultPollInterval is how often notifications are polled.
const DefaultPollInterval = 20 * time.Second

type notificationPollJob struct {
	center NotificationCenter

	mu     sync.Mutex
	ticker *workers.Ticker
}

// NewNotificationPollJob creates a job that calls center.Poll on a ticker.
// The job is idle until Start is called.
func NewNotificationPollJob(center NotificationCenter) NotificationPollJob {
	return &notificationPollJob{center: center}
}

// Start stops any previous loop, polls once, then polls every interval
// until ctx is cancelled or Stop is called.
func (j *notificationPollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	j.Stop()

	t := workers.NewTicker(interval, true, j.center.Poll)
	j.mu.Lock()
	j.ticker = t
	j.mu.Unlock()
	t.Start(ctx)
}

func (j *notificationPollJob) Stop() {
	j.mu.Lock()
	t := j.ticker
	j.ticker = nil
	j.mu.Unlock()

	if t != nil {
		t.Stop()
	}
}

// pollWorker runs a NotificationPollJob as a workers.Worker.
type pollWorker struct {
	job      NotificationPollJob
	interval time.Duration
}

// NewPollWorker adapts job to the workers package.
func NewPollWorker(job NotificationPollJob, interval time.Duration) workers.Worker {
	return &pollWorker{job: job, interval: interval}
}

func (w *pollWorker) Start(ctx context.Context) { w.job.Start(ctx, w.interval) }
func (w *pollWorker) Stop()                     { w.job.Stop() }
