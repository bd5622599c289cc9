package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/checkin-backend-go/internal/pkg/database"
)

// schemaStatements create the tables and the two compound unique indexes.
// The indexes are the correctness source of truth for the daily duplicate
// invariants: concurrent check-then-insert submissions for the same key
// serialize on them, so at most one insert wins per (employee, date) and
// per (device, date).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id BIGSERIAL PRIMARY KEY,
		employee_code TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		department_id BIGINT NOT NULL REFERENCES departments(id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id BIGSERIAL PRIMARY KEY,
		employee_code TEXT NOT NULL,
		employee_name TEXT NOT NULL,
		department_name TEXT NOT NULL,
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		device_id TEXT NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		distance_meters DOUBLE PRECISION,
		check_in_time TIMESTAMPTZ NOT NULL,
		check_in_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_attendance_employee_date
		ON attendance_records (employee_code, check_in_date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_attendance_device_date
		ON attendance_records (device_id, check_in_date)`,
}

// EnsureSchema creates the schema at startup when it does not exist yet.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
