package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yolapp/yol-backend/internal/domain"
)

// stubTaskService implements task.Service with canned results
type stubTaskService struct {
	mu           sync.Mutex
	rotateCalls  int
	archiveCalls int
	archiveErr   error
	archived     int64
}

func (s *stubTaskService) CreateCustomTask(ctx context.Context, userID int, title string) (*domain.UserTask, error) {
	return nil, nil
}

func (s *stubTaskService) AssignDailyTasks(ctx context.Context, userID int) ([]domain.UserTask, error) {
	return nil, nil
}

func (s *stubTaskService) GetUserTasks(ctx context.Context, userID int) (*domain.UserTaskList, error) {
	return nil, nil
}

func (s *stubTaskService) RenameTask(ctx context.Context, userID, userTaskID int, title string) error {
	return nil
}

func (s *stubTaskService) DeleteCustomTask(ctx context.Context, userID, userTaskID int) error {
	return nil
}

func (s *stubTaskService) RotateDailyPool(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rotateCalls++
	return nil
}

func (s *stubTaskService) ArchiveStale(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archiveCalls++
	return s.archived, s.archiveErr
}

type countingJob struct {
	count atomic.Int32
	err   error
}

func (j *countingJob) Process(ctx context.Context) error {
	j.count.Add(1)
	return j.err
}

func TestPool_ProcessesJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := &countingJob{}
	for i := 0; i < 5; i++ {
		pool.Enqueue(job)
	}

	assert.Eventually(t, func() bool {
		return job.count.Load() == 5
	}, time.Second, 10*time.Millisecond)
}

func TestPool_SurvivesFailingJobs(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	failing := &countingJob{err: errors.New("boom")}
	healthy := &countingJob{}

	pool.Enqueue(failing)
	pool.Enqueue(healthy)

	assert.Eventually(t, func() bool {
		return healthy.count.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestPool_StopWaitsForWorkers(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestArchiveJob_Process(t *testing.T) {
	svc := &stubTaskService{archived: 3}
	job := NewArchiveJob(svc)

	err := job.Process(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, svc.archiveCalls)
}

func TestArchiveJob_PropagatesError(t *testing.T) {
	svc := &stubTaskService{archiveErr: errors.New("db down")}
	job := NewArchiveJob(svc)

	err := job.Process(context.Background())

	assert.Error(t, err)
}

func TestRotationWorker_ShutdownIsClean(t *testing.T) {
	svc := &stubTaskService{}
	worker := NewRotationWorker(svc)
	worker.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, worker.Shutdown(ctx))
}

func TestRotationWorker_ShutdownTwice(t *testing.T) {
	svc := &stubTaskService{}
	worker := NewRotationWorker(svc)
	worker.Start()

	ctx := context.Background()
	require.NoError(t, worker.Shutdown(ctx))
	require.NoError(t, worker.Shutdown(ctx))
}

func TestTimeUntilNextMidnight_Bounds(t *testing.T) {
	d := timeUntilNextMidnight()

	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 24*time.Hour)
}

func TestRotationWorker_ExecuteRotation(t *testing.T) {
	svc := &stubTaskService{}
	worker := NewRotationWorker(svc)

	worker.executeRotation()
	worker.wg.Wait()

	assert.Equal(t, 1, svc.rotateCalls)
}
