package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

// CatalogService serves read-only lookups over the externally owned vehicle
// dataset. Filtering and ordering happen here because the backing store is a
// flat file with no query capability of its own.
type CatalogService struct {
	catalog ports.CatalogRepository
}

func NewCatalogService(catalogRepo ports.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalogRepo}
}

func (s *CatalogService) List(ctx context.Context, filter domain.VehicleListFilter) (*domain.VehicleListResult, error) {
	vehicles, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.Vehicle, 0, len(vehicles))
	brand := strings.ToLower(strings.TrimSpace(filter.Brand))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, vehicle := range vehicles {
		if brand != "" && strings.ToLower(vehicle.Brand) != brand {
			continue
		}
		if search != "" && !matchesSearch(vehicle, search) {
			continue
		}
		results = append(results, vehicle)
	}

	switch filter.Sort {
	case domain.VehicleSortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].PriceValue < results[j].PriceValue })
	case domain.VehicleSortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool { return results[i].PriceValue > results[j].PriceValue })
	case domain.VehicleSortNameAsc:
		sort.SliceStable(results, func(i, j int) bool { return strings.ToLower(results[i].Name) < strings.ToLower(results[j].Name) })
	}

	total := len(results)
	limit, offset := normalizeCatalogPagination(filter.Limit, filter.Offset)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &domain.VehicleListResult{
		Total:    total,
		Vehicles: results[offset:end],
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// GetBySlug resolves a vehicle by slug, falling back to the raw id so older
// links that used numeric ids keep working.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*domain.Vehicle, error) {
	needle := strings.ToLower(strings.TrimSpace(slug))
	if needle == "" {
		return nil, ErrVehicleNotFound
	}

	vehicles, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range vehicles {
		if strings.ToLower(vehicles[i].Slug) == needle {
			return &vehicles[i], nil
		}
	}
	for i := range vehicles {
		if vehicles[i].ID == strings.TrimSpace(slug) {
			return &vehicles[i], nil
		}
	}
	return nil, ErrVehicleNotFound
}

// VehiclesByIDs returns catalog entries for the given ids, skipping ids the
// catalog does not know. Order follows the input ids.
func (s *CatalogService) VehiclesByIDs(ctx context.Context, ids []string) ([]domain.Vehicle, error) {
	if len(ids) == 0 {
		return []domain.Vehicle{}, nil
	}

	vehicles, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Vehicle, len(vehicles))
	for _, vehicle := range vehicles {
		byID[vehicle.ID] = vehicle
	}

	matched := make([]domain.Vehicle, 0, len(ids))
	for _, id := range ids {
		if vehicle, ok := byID[id]; ok {
			matched = append(matched, vehicle)
		}
	}
	return matched, nil
}

func matchesSearch(vehicle domain.Vehicle, needle string) bool {
	return strings.Contains(strings.ToLower(vehicle.Name), needle) ||
		strings.Contains(strings.ToLower(vehicle.Brand), needle) ||
		strings.Contains(strings.ToLower(vehicle.Slug), needle)
}

func normalizeCatalogPagination(limit, offset int) (int, int) {
	const (
		defaultLimit = 50
		maxLimit     = 200
	)

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
