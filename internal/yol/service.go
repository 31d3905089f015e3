package yol

import (
	"context"
	"fmt"

	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/logger"
	"github.com/yolapp/yol-backend/internal/metrics"
	"github.com/yolapp/yol-backend/internal/repository"
)

// Service defines companion operations
type Service interface {
	// Adopt creates the user's companion at the Egg stage of the chosen
	// species chain. One companion per user.
	Adopt(ctx context.Context, userID int, name, speciesName string) (*domain.Yol, error)
	GetYol(ctx context.Context, yolID int) (*domain.Yol, error)
	// GetYolByUser returns the user's companion after running the bond-level
	// auto-complete check against its cumulative XP.
	GetYolByUser(ctx context.Context, userID int) (*domain.Yol, error)
	// Evolve advances the companion one stage when its XP clears the
	// current stage's threshold. Forward-only; terminal at the final stage.
	// Acts on behalf of userID; another user's companion is not found.
	Evolve(ctx context.Context, userID, yolID int) (*domain.Yol, error)
	ListSpecies(ctx context.Context) ([]domain.Species, error)
}

type service struct {
	yols      repository.Yol
	species   repository.Species
	txStarter repository.TxStarter
}

// NewService creates the companion service
func NewService(yols repository.Yol, species repository.Species, txStarter repository.TxStarter) Service {
	return &service{yols: yols, species: species, txStarter: txStarter}
}

func (s *service) Adopt(ctx context.Context, userID int, name, speciesName string) (*domain.Yol, error) {
	egg, err := s.species.GetSpeciesByNameAndStage(ctx, speciesName, domain.StageEgg)
	if err != nil {
		return nil, err
	}

	yol := &domain.Yol{
		Name:      name,
		XP:        0,
		UserID:    userID,
		SpeciesID: egg.ID,
	}
	created, err := s.yols.CreateYol(ctx, yol)
	if err != nil {
		return nil, err
	}
	created.Species = egg

	logger.FromContext(ctx).Info("Yol adopted", "yol_id", created.ID, "user_id", userID, "species", speciesName)
	return created, nil
}

func (s *service) GetYol(ctx context.Context, yolID int) (*domain.Yol, error) {
	return s.yols.GetYolByID(ctx, yolID)
}

func (s *service) GetYolByUser(ctx context.Context, userID int) (*domain.Yol, error) {
	yol, err := s.yols.GetYolByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.autoCompleteBondLevels(ctx, yol); err != nil {
		// The read itself succeeded; bond bookkeeping failing should be loud
		// but not hide the companion
		logger.FromContext(ctx).Error("Bond level auto-complete failed", "yol_id", yol.ID, "error", err)
	}
	return yol, nil
}

// autoCompleteBondLevels completes each bond-level success whose XP threshold
// the companion has crossed. Completion is one-way, so re-checking on every
// read is idempotent.
func (s *service) autoCompleteBondLevels(ctx context.Context, yol *domain.Yol) error {
	log := logger.FromContext(ctx)

	for _, level := range domain.BondLevels {
		if yol.XP < level.XP {
			break
		}

		tx, err := s.txStarter.BeginTx(ctx)
		if err != nil {
			return err
		}

		err = func() error {
			defer repository.SafeRollback(ctx, tx)

			success, err := tx.GetSuccessByKey(ctx, level.SuccessKey)
			if err != nil {
				return fmt.Errorf("%w: success definition %q missing", domain.ErrIntegrity, level.SuccessKey)
			}

			us, err := tx.GetUserSuccessBySuccessID(ctx, yol.UserID, success.ID)
			if err != nil {
				return err
			}
			if us.IsCompleted {
				return nil
			}

			if err := tx.CompleteUserSuccess(ctx, yol.UserID, success.ID); err != nil {
				return err
			}
			if err := tx.Commit(ctx); err != nil {
				return err
			}

			metrics.SuccessesUnlocked.Inc()
			log.Info("Bond level reached", "yol_id", yol.ID, "key", level.SuccessKey, "xp", yol.XP)
			return nil
		}()
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Evolve(ctx context.Context, userID, yolID int) (*domain.Yol, error) {
	log := logger.FromContext(ctx)

	tx, err := s.txStarter.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	yol, err := tx.GetYolForUpdate(ctx, yolID)
	if err != nil {
		return nil, err
	}
	if yol.UserID != userID {
		return nil, domain.ErrYolNotFound
	}

	stage := yol.Species.Stage
	threshold, ok := domain.EvolutionThreshold(stage)
	if !ok {
		return nil, domain.ErrFinalStage
	}
	if yol.XP < threshold {
		return nil, fmt.Errorf("%w: %d of %d", domain.ErrInsufficientXP, yol.XP, threshold)
	}

	next, err := tx.GetSpeciesByNameAndStage(ctx, yol.Species.Name, domain.NextStage(stage))
	if err != nil {
		// A chain missing its next link is broken reference data
		return nil, fmt.Errorf("%w: species %q has no %s stage", domain.ErrIntegrity, yol.Species.Name, domain.NextStage(stage))
	}

	if err := tx.UpdateYolSpecies(ctx, yolID, next.ID); err != nil {
		return nil, err
	}

	// Each transition bumps its companion success counter, capped at the
	// required amount. The success stays unclaimed; its reward XP is only
	// awarded through the validate step.
	if key, ok := domain.EvolutionSuccessKey(stage); ok {
		success, err := tx.GetSuccessByKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%w: success definition %q missing", domain.ErrIntegrity, key)
		}
		us, err := tx.GetUserSuccessBySuccessID(ctx, yol.UserID, success.ID)
		if err != nil {
			return nil, err
		}
		if us.ActualAmount < success.AmountNeeded {
			if err := tx.IncrementUserSuccess(ctx, yol.UserID, success.ID, 1); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.Evolutions.WithLabelValues(string(next.Stage)).Inc()
	log.Info("Yol evolved", "yol_id", yolID, "from", stage, "to", next.Stage)

	yol.SpeciesID = next.ID
	yol.Species = next
	return yol, nil
}

func (s *service) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	return s.species.ListSpecies(ctx)
}
