package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS owners (
		id UUID PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL DEFAULT '',
		phone_number VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS dogs (
		id UUID PRIMARY KEY,
		owner_id UUID REFERENCES owners(id),
		name VARCHAR(100) NOT NULL,
		breed VARCHAR(100) NOT NULL DEFAULT '',
		sex VARCHAR(20) NOT NULL DEFAULT '',
		age INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS kennels (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		guardian_name VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sub_kennels (
		kennel_id UUID NOT NULL REFERENCES kennels(id),
		number INTEGER NOT NULL,
		PRIMARY KEY (kennel_id, number)
	)`,

	// status accepts both Rejected and Cancelled: create and update disagree on the set.
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		owner_id UUID NOT NULL REFERENCES owners(id),
		dog_id UUID NOT NULL REFERENCES dogs(id),
		check_in_date TIMESTAMPTZ NOT NULL,
		check_in_time VARCHAR(5) NOT NULL,
		check_out_date TIMESTAMPTZ NOT NULL,
		check_out_time VARCHAR(5) NOT NULL,
		day_boarding BOOLEAN NOT NULL DEFAULT FALSE,
		overnight_boarding BOOLEAN NOT NULL DEFAULT FALSE,
		services TEXT[] NOT NULL DEFAULT '{}',
		total_amount DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (total_amount >= 0),
		status VARCHAR(20) NOT NULL DEFAULT 'Pending'
			CHECK (status IN ('Pending', 'Confirmed', 'Completed', 'Rejected', 'Cancelled')),
		boarding_status VARCHAR(20) NOT NULL DEFAULT 'PaymentPending'
			CHECK (boarding_status IN ('CheckedIn', 'CheckedOut', 'PaymentPending')),
		kennel_id UUID REFERENCES kennels(id),
		sub_kennel_number INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_check_in_date ON bookings(check_in_date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_boarding_status ON bookings(boarding_status)`,
}

// RunMigrations creates the schema if it does not exist yet.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	logger.InfoLogger.Info("Database migrations completed successfully")
	return nil
}
