package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
)

type BookmarkRepository struct {
	db *sqlx.DB
}

func NewBookmarkRepo(db *sqlx.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Add is set union: re-adding an existing pair is a no-op, not an error.
func (r *BookmarkRepository) Add(ctx context.Context, userID uuid.UUID, vehicleID string) error {
	const query = `
		INSERT INTO bookmark (user_id, vehicle_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, vehicle_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID, vehicleID)
	return err
}

func (r *BookmarkRepository) Remove(ctx context.Context, userID uuid.UUID, vehicleID string) error {
	const query = `
		DELETE FROM bookmark
		WHERE user_id = $1 AND vehicle_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, vehicleID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Bookmark, error) {
	const query = `
		SELECT user_id, vehicle_id, created_at
		FROM bookmark
		WHERE user_id = $1
		ORDER BY created_at DESC, vehicle_id
	`

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Bookmark, 0)
	for rows.Next() {
		var item domain.Bookmark
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ ports.BookmarkRepository = (*BookmarkRepository)(nil)
