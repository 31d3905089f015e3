package config

import "time"

const (
	// Configuration file paths
	ConfigPathDailyTasks = "configs/seed/daily_tasks.json"
	ConfigPathSuccesses  = "configs/seed/successes.json"
	ConfigPathSpecies    = "configs/seed/species.json"

	// JSON schemas the seed catalogs are validated against
	SchemaPathDailyTasks = "configs/schemas/daily_tasks.schema.json"
	SchemaPathSuccesses  = "configs/schemas/successes.schema.json"
	SchemaPathSpecies    = "configs/schemas/species.schema.json"
)

// Token lifetime defaults, overridable via ACCESS_TOKEN_TTL / REFRESH_TOKEN_TTL
const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Database pool defaults
const (
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
