package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
)

// CatalogRepository serves vehicles from a JSON file on disk. Every call
// re-reads the file: the dataset is maintained out of band and the service
// holds no correctness dependency on its freshness, so nothing is cached.
type CatalogRepository struct {
	path string
}

func NewCatalogRepo(path string) *CatalogRepository {
	return &CatalogRepository{path: path}
}

func (r *CatalogRepository) All(ctx context.Context) ([]domain.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", r.path, err)
	}

	var vehicles []domain.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", r.path, err)
	}
	return vehicles, nil
}

var _ ports.CatalogRepository = (*CatalogRepository)(nil)
