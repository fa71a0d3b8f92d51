package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/sendsight/sendsight/config"
)

// GetDSN returns the PostgreSQL connection string for the configured
// database.
func GetDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
}

// GetConnectionPoolSettings returns connection pool settings based on
// environment
func GetConnectionPoolSettings(environment string) (maxOpen, maxIdle int, maxLifetime time.Duration) {
	// Use smaller pools for test environment to conserve connections
	if environment == "test" {
		return 10, 5, 2 * time.Minute
	}

	return 25, 25, 20 * time.Minute
}

// Connect opens the delivery database and verifies the connection.
func Connect(cfg *config.DatabaseConfig, environment string) (*sql.DB, error) {
	db, err := sql.Open("postgres", GetDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings(environment)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewRedisClient creates the Redis client used for delivery counters and
// cached analytics payloads.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: 3,
	})
}

// EnsureSchema creates the delivery tracking tables and indexes if they
// do not exist yet. Statements are idempotent so startup is safe to
// repeat.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS delivery_events (
			id VARCHAR(255) PRIMARY KEY,
			email_id VARCHAR(255) NOT NULL,
			campaign_id VARCHAR(255) NOT NULL DEFAULT '',
			organization_id VARCHAR(255) NOT NULL,
			recipient_email VARCHAR(512) NOT NULL,
			event_type VARCHAR(32) NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL,
			metadata JSONB,
			provider VARCHAR(64) NOT NULL DEFAULT '',
			message_id VARCHAR(512) NOT NULL DEFAULT '',
			bounce_type VARCHAR(64) NOT NULL DEFAULT '',
			complaint_type VARCHAR(64) NOT NULL DEFAULT '',
			user_agent TEXT NOT NULL DEFAULT '',
			ip_address VARCHAR(64) NOT NULL DEFAULT '',
			location VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_delivery_events_org_timestamp
			ON delivery_events(organization_id, timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_delivery_events_org_campaign
			ON delivery_events(organization_id, campaign_id)`,
		`CREATE INDEX IF NOT EXISTS idx_delivery_events_timestamp
			ON delivery_events(timestamp)`,
		`CREATE TABLE IF NOT EXISTS email_records (
			email_id VARCHAR(255) NOT NULL,
			campaign_id VARCHAR(255) NOT NULL DEFAULT '',
			organization_id VARCHAR(255) NOT NULL,
			provider VARCHAR(64) NOT NULL,
			message_id VARCHAR(512) NOT NULL,
			recipient_email VARCHAR(512) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (provider, message_id, recipient_email)
		)`,
		`CREATE TABLE IF NOT EXISTS contacts (
			organization_id VARCHAR(255) NOT NULL,
			email VARCHAR(512) NOT NULL,
			status VARCHAR(32) NOT NULL DEFAULT 'ACTIVE',
			unsubscribed_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (organization_id, email)
		)`,
	}

	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}
