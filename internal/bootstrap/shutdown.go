package bootstrap

import (
	"context"
	"log/slog"

	"github.com/yolapp/yol-backend/internal/scheduler"
	"github.com/yolapp/yol-backend/internal/server"
	"github.com/yolapp/yol-backend/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server         *server.Server
	RotationWorker *worker.RotationWorker
	Scheduler      *scheduler.Scheduler
	WorkerPool     *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// Order matters:
//  1. HTTP server (stop accepting new requests)
//  2. Rotation worker (cancel the pending midnight timer)
//  3. Scheduler (stop enqueueing sweep jobs)
//  4. Worker pool (drain in-flight jobs)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.RotationWorker != nil {
		if err := components.RotationWorker.Shutdown(ctx); err != nil {
			slog.Error("Rotation worker shutdown failed", "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
