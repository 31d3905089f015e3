package worker

import (
	"context"
	"sync"
	"time"

	"github.com/yolapp/yol-backend/internal/logger"
	"github.com/yolapp/yol-backend/internal/task"
)

// RotationWorker rotates the daily task pool at local midnight
type RotationWorker struct {
	taskService task.Service
	timer       *time.Timer
	shutdown    chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
}

// NewRotationWorker creates a new RotationWorker
func NewRotationWorker(taskService task.Service) *RotationWorker {
	return &RotationWorker{
		taskService: taskService,
		shutdown:    make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first rotation
func (w *RotationWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until next local midnight and schedules the rotation
func (w *RotationWorker) scheduleNext() {
	duration := timeUntilNextMidnight()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent "tight loop" rescheduling caused by early triggers
	if duration > 1*time.Hour {
		// Stage 1: Long-range (Standby). Wake up 45 minutes before midnight.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		log.Info(LogMsgRotationStandby, "next_check_at", time.Now().Add(waitDuration))
		return
	}

	// Stage 2: Final approach. Schedule the actual rotation.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer triggered early (jitter > 10s),
		// simply reschedule for the remaining time.
		// If duration is > 23h, we are actually on time or slightly late.
		rem := timeUntilNextMidnight()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeRotation()
		w.scheduleNext() // This will now calculate ~24h and jump back to Stage 1
	})
	w.mu.Unlock()

	log.Info(LogMsgRotationApproach, "next_rotation_at", time.Now().Add(duration))
}

// executeRotation performs the pool rotation in a tracked goroutine
func (w *RotationWorker) executeRotation() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgRotationStarting)

		if err := w.taskService.RotateDailyPool(ctx, time.Now()); err != nil {
			log.Error(LogMsgRotationFailed, "error", err)
			return
		}

		log.Info(LogMsgRotationCompleted)
	}()
}

// Shutdown gracefully shuts down the rotation worker.
// Cancels the pending timer and waits for any in-flight rotations to complete.
func (w *RotationWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down rotation worker")

	// Signal shutdown to timer callback (safe to close once)
	select {
	case <-w.shutdown:
		// Already closed, nothing to do
	default:
		close(w.shutdown)
	}

	// Cancel pending timer
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending rotation")
	}
	w.mu.Unlock()

	// Wait for any in-flight rotations to complete
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Rotation worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Rotation worker shutdown timeout, a rotation may still be running")
		return ctx.Err()
	}
}

// timeUntilNextMidnight calculates the duration until the next local 00:00.
// The pool's assignment stamp uses local days, so rotation follows the same clock.
func timeUntilNextMidnight() time.Duration {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
