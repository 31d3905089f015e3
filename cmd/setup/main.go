package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/yolapp/yol-backend/internal/bootstrap"
	"github.com/yolapp/yol-backend/internal/config"
	"github.com/yolapp/yol-backend/internal/database"
)

// Setup tool for local development: creates the database if missing, runs
// migrations, and seeds the catalog tables. The app does the same migration
// and seeding on startup; this tool exists so a fresh checkout can prepare
// the database without starting the server.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	connString := cfg.GetDBConnString()

	fmt.Println("Running migrations...")
	if err := database.Migrate(connString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	fmt.Println("Seeding catalogs...")
	repos := bootstrap.InitializeRepositories(dbPool)
	if err := bootstrap.SyncCatalogs(ctx, repos); err != nil {
		log.Fatalf("Failed to seed catalogs: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}

// ensureDatabase connects to the default 'postgres' database and creates the
// target database if it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
