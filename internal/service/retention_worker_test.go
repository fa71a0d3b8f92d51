package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/sendsight/sendsight/internal/domain/mocks"
	"github.com/sendsight/sendsight/pkg/logger"
)

func TestRetentionWorkerStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mocks.NewMockDeliveryTrackerService(ctrl)
	worker := NewRetentionWorker(tracker, 90, logger.NewTestLogger(t))

	worker.Start()
	worker.Start() // second Start is a no-op
	worker.Stop()
	worker.Stop() // second Stop is a no-op
}

func TestRetentionWorkerConcurrentStartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mocks.NewMockDeliveryTrackerService(ctrl)
	worker := NewRetentionWorker(tracker, 90, logger.NewTestLogger(t))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			worker.Start()
		}()
		go func() {
			defer wg.Done()
			worker.Stop()
		}()
	}
	wg.Wait()
	worker.Stop()
}

func TestRetentionWorkerPurges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker := mocks.NewMockDeliveryTrackerService(ctrl)

	fired := make(chan struct{})
	tracker.EXPECT().CleanupOldData(gomock.Any(), 30).DoAndReturn(
		func(_ context.Context, _ int) (int64, error) {
			select {
			case fired <- struct{}{}:
			default:
			}
			return 5, nil
		}).MinTimes(1)

	worker := NewRetentionWorker(tracker, 30, logger.NewTestLogger(t))
	worker.interval = 10 * time.Millisecond
	worker.Start()
	defer worker.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("retention purge did not run")
	}
}
