package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/yolapp/yol-backend/internal/database/postgres"
	"github.com/yolapp/yol-backend/internal/domain"
	"github.com/yolapp/yol-backend/internal/testing/leaktest"
)

// These tests run pool and repository behavior against a real postgres with
// the embedded migrations applied, so the queries hit the same schema the
// service runs on.

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		testDBConnString, terminate = setupMigratedContainer(ctx)
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

// setupMigratedContainer starts a throwaway postgres and applies the embedded
// migrations to it. On any failure it returns an empty connection string and
// the tests skip themselves.
func setupMigratedContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupMigratedContainer: %v\n", r)
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("yoltest"),
		tcpostgres.WithUsername("yol"),
		tcpostgres.WithPassword("yol"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		terminate()
		return "", func() {}
	}

	if err := Migrate(connStr); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		terminate()
		return "", func() {}
	}

	return connStr, terminate
}

func newTestPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := NewPool(testDBConnString, maxConns, 1*time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// TestPool_SpeciesRoundTrip writes through a repository and reads the row
// back, proving the pool, migrations and repository SQL agree on the schema.
func TestPool_SpeciesRoundTrip(t *testing.T) {
	pool := newTestPool(t, 5)
	repo := postgres.NewSpeciesRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.UpsertSpecies(ctx, domain.Species{Name: "Flamyol", Stage: domain.StageEgg}))
	// Idempotent on the (name, stage) key
	require.NoError(t, repo.UpsertSpecies(ctx, domain.Species{Name: "Flamyol", Stage: domain.StageEgg}))

	egg, err := repo.GetSpeciesByNameAndStage(ctx, "Flamyol", domain.StageEgg)
	require.NoError(t, err)
	assert.Positive(t, egg.ID)
	assert.Equal(t, "Flamyol", egg.Name)
	assert.Equal(t, domain.StageEgg, egg.Stage)

	_, err = repo.GetSpeciesByNameAndStage(ctx, "Flamyol", domain.StageFinal)
	assert.ErrorIs(t, err, domain.ErrSpeciesNotFound)
}

// TestPool_ConnectionsReleased verifies repository reads return their
// connections to the pool
func TestPool_ConnectionsReleased(t *testing.T) {
	pool := newTestPool(t, 5)
	repo := postgres.NewSpeciesRepository(pool)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := repo.ListSpecies(ctx)
		require.NoError(t, err, "List failed on iteration %d", i)
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
}

// TestPool_MaxConnsEnforced verifies the pool blocks at its MaxConns limit
// and recovers once a connection is handed back
func TestPool_MaxConnsEnforced(t *testing.T) {
	maxConns := 3
	pool := newTestPool(t, maxConns)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conns := make([]*pgxpool.Conn, maxConns)
	for i := range conns {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		conns[i] = conn
	}
	assert.Equal(t, int32(maxConns), pool.Stat().AcquiredConns())

	// One past the limit must block until the context gives up
	shortCtx, shortCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer shortCancel()
	_, err := pool.Acquire(shortCtx)
	assert.Error(t, err, "Should fail to acquire when pool is exhausted")

	conns[0].Release()

	conn, err := pool.Acquire(ctx)
	assert.NoError(t, err)
	if conn != nil {
		conn.Release()
	}

	for _, c := range conns[1:] {
		c.Release()
	}
}

// TestPool_NoLeakOnQueryError verifies failed queries still hand their
// connections back
func TestPool_NoLeakOnQueryError(t *testing.T) {
	pool := newTestPool(t, 5)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)

		// Column does not exist on the migrated schema
		_, err = conn.Query(ctx, "SELECT bond FROM species")
		assert.Error(t, err, "Query should fail")

		conn.Release()
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(),
		"No connections should be leaked after errors")
}

// TestPool_ConcurrentRepositoryReads runs repository reads from many
// goroutines against the shared pool
func TestPool_ConcurrentRepositoryReads(t *testing.T) {
	pool := newTestPool(t, 10)
	repo := postgres.NewSpeciesRepository(pool)

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	concurrency := 20
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if _, err := repo.ListSpecies(context.Background()); err != nil {
				t.Errorf("Worker %d list failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")

	checker.Check(2) // Allow small tolerance for pool background workers
}
