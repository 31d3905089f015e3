package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yolapp/yol-backend/internal/database/postgres"
	"github.com/yolapp/yol-backend/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User    repository.User
	Task    repository.Task
	Success repository.Success
	Species repository.Species
	Yol     repository.Yol
	Tx      repository.TxStarter
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    postgres.NewUserRepository(dbPool),
		Task:    postgres.NewTaskRepository(dbPool),
		Success: postgres.NewSuccessRepository(dbPool),
		Species: postgres.NewSpeciesRepository(dbPool),
		Yol:     postgres.NewYolRepository(dbPool),
		Tx:      postgres.NewTxManager(dbPool),
	}
}
