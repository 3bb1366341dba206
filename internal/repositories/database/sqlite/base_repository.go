package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// BaseRepository provides common functionality for all sqlite repositories.
type BaseRepository struct {
	DB *sql.DB
}

// Begin starts a new database transaction.
func (r *BaseRepository) Begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}
