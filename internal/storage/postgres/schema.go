package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements are safe to run on every start.
var schemaStatements = []string{
	`DO $$ BEGIN
	CREATE TYPE application_status AS ENUM ('applied', 'interviewing', 'rejected', 'offer', 'accepted');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;`,
	`DO $$ BEGIN
	CREATE TYPE leetcode_difficulty AS ENUM ('easy', 'medium', 'hard');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;`,
	`CREATE TABLE IF NOT EXISTS applications (
	id            SERIAL PRIMARY KEY,
	company       VARCHAR(255) NOT NULL,
	role          VARCHAR(255) NOT NULL,
	url           TEXT,
	status        application_status DEFAULT 'applied',
	applied_date  DATE DEFAULT CURRENT_DATE,
	last_contact  DATE,
	notes         TEXT,
	salary_range  VARCHAR(100),
	location      VARCHAR(255),
	created_at    TIMESTAMP DEFAULT now(),
	updated_at    TIMESTAMP DEFAULT now()
);`,
	`CREATE TABLE IF NOT EXISTS leetcode (
	id                SERIAL PRIMARY KEY,
	problem_name      VARCHAR(255) NOT NULL,
	problem_number    INTEGER,
	difficulty        leetcode_difficulty,
	topics            TEXT[],
	solved_date       DATE DEFAULT CURRENT_DATE,
	time_minutes      INTEGER,
	notes             TEXT,
	solution_approach TEXT
);`,
}

// EnsureSchema creates the enum types and tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
