package service

import (
	"context"
	"sync"
	"time"

	"github.com/sendsight/sendsight/internal/domain"
	"github.com/sendsight/sendsight/pkg/logger"
)

// RetentionWorker periodically purges delivery events past the retention
// window. Counter buckets in Redis expire on their own TTLs, so only the
// durable store needs an active sweep.
type RetentionWorker struct {
	tracker       domain.DeliveryTrackerService
	logger        logger.Logger
	retentionDays int
	interval      time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewRetentionWorker creates a retention worker sweeping once a day.
func NewRetentionWorker(tracker domain.DeliveryTrackerService, retentionDays int, logger logger.Logger) *RetentionWorker {
	return &RetentionWorker{
		tracker:       tracker,
		logger:        logger,
		retentionDays: retentionDays,
		interval:      24 * time.Hour,
	}
}

// Start begins the purge loop. Calling Start on a running worker is a
// no-op.
func (w *RetentionWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	w.running = true

	var ctx context.Context
	ctx, w.cancel = context.WithCancel(context.Background())

	w.logger.WithField("retention_days", w.retentionDays).Info("Starting delivery retention worker")

	w.wg.Add(1)
	go w.runLoop(ctx)
}

// Stop cancels the loop and waits for any in-flight purge to finish.
func (w *RetentionWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	w.cancel()
	w.wg.Wait()
	w.running = false
	w.logger.Info("Delivery retention worker stopped")
}

func (w *RetentionWorker) runLoop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.tracker.CleanupOldData(ctx, w.retentionDays); err != nil {
				w.logger.WithField("error", err.Error()).Error("Delivery retention purge failed")
			}
		}
	}
}
