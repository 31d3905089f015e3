package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yolapp/yol-backend/internal/catalog"
	"github.com/yolapp/yol-backend/internal/domain"
)

// SyncCatalogs loads the seed catalogs and upserts them into the database.
// Upserts key on natural identifiers (success key, species name+stage, daily
// task title), so running the sync on every startup is idempotent.
//
// Successes sync first: daily-task templates reference Daily-type successes
// by key and need the rows present to resolve them.
func SyncCatalogs(ctx context.Context, repos *Repositories) error {
	slog.Info(LogMsgSyncingCatalogs)

	loader := catalog.NewLoader()

	successes, err := loader.LoadSuccesses()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadSuccesses, err)
	}
	for _, entry := range successes {
		if err := repos.Success.UpsertSuccess(ctx, entry.Domain()); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalogs, err)
		}
	}

	species, err := loader.LoadSpecies()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadSpecies, err)
	}
	for _, entry := range species {
		if err := repos.Species.UpsertSpecies(ctx, entry.Domain()); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalogs, err)
		}
	}

	dailyTasks, err := loader.LoadDailyTasks()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadDailyTasks, err)
	}
	for _, entry := range dailyTasks {
		task := domain.DailyTask{
			Title:      entry.Title,
			Image:      entry.Image,
			Category:   entry.Category,
			Difficulty: entry.Difficulty,
			XP:         entry.XP,
		}
		if entry.SuccessKey != "" {
			linked, err := repos.Success.GetSuccessByKey(ctx, entry.SuccessKey)
			if err != nil {
				return fmt.Errorf("daily task %q links unknown success %q: %w", entry.Title, entry.SuccessKey, err)
			}
			task.SuccessID = &linked.ID
		}
		if err := repos.Task.UpsertDailyTask(ctx, task); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalogs, err)
		}
	}

	slog.Info(LogMsgCatalogsSynced,
		"successes", len(successes),
		"species", len(species),
		"daily_tasks", len(dailyTasks))
	return nil
}
