package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/carhive/carhive-api/internal/domain"
)

// ReviewRepository persists reviews. Create must be backed by a unique
// constraint on (user_id, vehicle_id): a duplicate surfaces as the store's
// unique-violation error, never as a pre-checked read.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Review, error)
	AggregateByVehicle(ctx context.Context, vehicleID string) (count int, average float64, err error)
}
