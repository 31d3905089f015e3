package worker

import (
	"context"
	"time"

	"github.com/yolapp/yol-backend/internal/logger"
	"github.com/yolapp/yol-backend/internal/task"
)

// ArchiveJob sweeps stale incomplete daily tasks across all users.
// It implements Job so the scheduler can run it on an interval.
type ArchiveJob struct {
	taskService task.Service
}

// NewArchiveJob creates the archive sweep job
func NewArchiveJob(taskService task.Service) *ArchiveJob {
	return &ArchiveJob{taskService: taskService}
}

// Process runs one sweep
func (j *ArchiveJob) Process(ctx context.Context) error {
	archived, err := j.taskService.ArchiveStale(ctx, time.Now())
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgArchiveSweepFailed, "error", err)
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgArchiveSweepCompleted, "archived", archived)
	return nil
}
