package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yolapp/yol-backend/internal/worker"
)

type tickJob struct {
	count atomic.Int32
}

func (j *tickJob) Process(ctx context.Context) error {
	j.count.Add(1)
	return nil
}

func TestScheduler_EnqueuesOnInterval(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &tickJob{}
	sched.Schedule(20*time.Millisecond, job)

	assert.Eventually(t, func() bool {
		return job.count.Load() >= 2
	}, time.Second, 10*time.Millisecond)

	sched.Stop()
}

func TestScheduler_StopHaltsTicking(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &tickJob{}
	sched.Schedule(20*time.Millisecond, job)

	assert.Eventually(t, func() bool {
		return job.count.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	sched.Stop()
	after := job.count.Load()
	time.Sleep(100 * time.Millisecond)

	// A tick already enqueued may still drain, nothing more
	assert.LessOrEqual(t, job.count.Load(), after+1)
}
