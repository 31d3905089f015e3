package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yolapp/yol-backend/internal/auth"
	"github.com/yolapp/yol-backend/internal/bootstrap"
	"github.com/yolapp/yol-backend/internal/config"
	"github.com/yolapp/yol-backend/internal/database"
	"github.com/yolapp/yol-backend/internal/handler"
	"github.com/yolapp/yol-backend/internal/progression"
	"github.com/yolapp/yol-backend/internal/scheduler"
	"github.com/yolapp/yol-backend/internal/server"
	"github.com/yolapp/yol-backend/internal/success"
	"github.com/yolapp/yol-backend/internal/task"
	"github.com/yolapp/yol-backend/internal/user"
	"github.com/yolapp/yol-backend/internal/worker"
	"github.com/yolapp/yol-backend/internal/yol"
)

const (
	// ShutdownTimeout is how long graceful shutdown waits before forcing exit
	ShutdownTimeout = 30 * time.Second

	// ArchiveSweepInterval is how often the stale daily-task sweep runs.
	// Rotation handles the midnight boundary; the sweep only catches tasks
	// missed while the service was down.
	ArchiveSweepInterval = 1 * time.Hour

	// Worker pool sizing for background jobs
	WorkerCount    = 2
	WorkerQueueLen = 10
)

// @title Yol Backend API
// @version 1.0
// @description REST backend for the Yol habit companion app.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Service exited with error", "error", err)
		os.Exit(1)
	}
}

// run wires the application together and blocks until shutdown completes.
// Split from main so deferred cleanup runs before os.Exit.
func run(cfg *config.Config) error {
	ctx := context.Background()

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		return err
	}

	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	if err := bootstrap.SyncCatalogs(ctx, repos); err != nil {
		return err
	}

	authService := auth.NewService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	userService := user.NewService(repos.User, authService)
	taskService := task.NewService(repos.Task)
	progressionService := progression.NewService(repos.Tx)
	yolService := yol.NewService(repos.Yol, repos.Species, repos.Tx)
	successService := success.NewService(repos.Success)

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, authService, cfg.TrustedProxies, dbPool,
		userService, taskService, progressionService, yolService, successService)

	// Background work: midnight pool rotation plus a periodic sweep that
	// archives daily tasks left over from previous days.
	rotationWorker := worker.NewRotationWorker(taskService)
	rotationWorker.Start()

	workerPool := worker.NewPool(WorkerCount, WorkerQueueLen)
	workerPool.Start()

	jobScheduler := scheduler.New(workerPool)
	jobScheduler.Schedule(ArchiveSweepInterval, worker.NewArchiveJob(taskService))

	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		RotationWorker: rotationWorker,
		Scheduler:      jobScheduler,
		WorkerPool:     workerPool,
	})

	return nil
}
