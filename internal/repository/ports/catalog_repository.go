package ports

import (
	"context"

	"github.com/carhive/carhive-api/internal/domain"
)

// CatalogRepository exposes the externally owned vehicle dataset. It is
// read-only; filtering and ordering live in the service layer because the
// backing store is a flat file, not a queryable database.
type CatalogRepository interface {
	All(ctx context.Context) ([]domain.Vehicle, error)
}
