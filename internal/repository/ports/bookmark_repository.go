package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/carhive/carhive-api/internal/domain"
)

// BookmarkRepository stores set membership per user. Add is an atomic
// insert-if-absent and succeeds when the pair already exists; Remove returns
// sql.ErrNoRows when the pair is not a member.
type BookmarkRepository interface {
	Add(ctx context.Context, userID uuid.UUID, vehicleID string) error
	Remove(ctx context.Context, userID uuid.UUID, vehicleID string) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Bookmark, error)
}
