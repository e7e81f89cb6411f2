package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jobtrail/jobtrail-backend/config"
	"github.com/jobtrail/jobtrail-backend/internal/storage/postgres"
)

// OpenDB connects to postgres and applies the schema.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	sctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := postgres.EnsureSchema(sctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("db schema: %w", err)
	}

	return db, nil
}
