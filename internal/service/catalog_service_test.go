package service

import (
	"context"
	"errors"
	"testing"

	"github.com/carhive/carhive-api/internal/domain"
)

func catalogFixture() *memoryCatalogRepo {
	return &memoryCatalogRepo{vehicles: []domain.Vehicle{
		{ID: "1", Slug: "swift-2024", Name: "Swift", Brand: "Suzuki", PriceValue: 650000},
		{ID: "2", Slug: "city-2024", Name: "City", Brand: "Honda", PriceValue: 1250000},
		{ID: "3", Slug: "civic-2024", Name: "Civic", Brand: "Honda", PriceValue: 2450000},
		{ID: "4", Slug: "nexon-ev", Name: "Nexon EV", Brand: "Tata", PriceValue: 1450000},
	}}
}

func TestCatalogService_ListFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(catalogFixture())

	result, err := svc.List(ctx, domain.VehicleListFilter{Brand: " Honda "})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected 2 Honda vehicles, got %d", result.Total)
	}
	for _, vehicle := range result.Vehicles {
		if vehicle.Brand != "Honda" {
			t.Fatalf("unexpected brand in filtered results: %q", vehicle.Brand)
		}
	}

	result, err = svc.List(ctx, domain.VehicleListFilter{Search: "ev"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 1 || result.Vehicles[0].ID != "4" {
		t.Fatalf("expected search to match Nexon EV, got %+v", result.Vehicles)
	}

	result, err = svc.List(ctx, domain.VehicleListFilter{Search: "ignis"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 0 || len(result.Vehicles) != 0 {
		t.Fatalf("expected empty result for unmatched search, got %+v", result)
	}
}

func TestCatalogService_ListSorting(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(catalogFixture())

	result, err := svc.List(ctx, domain.VehicleListFilter{Sort: domain.VehicleSortPriceAsc})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Vehicles[0].ID != "1" || result.Vehicles[len(result.Vehicles)-1].ID != "3" {
		t.Fatalf("unexpected price_asc order: %+v", idsOf(result.Vehicles))
	}

	result, err = svc.List(ctx, domain.VehicleListFilter{Sort: domain.VehicleSortPriceDesc})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Vehicles[0].ID != "3" {
		t.Fatalf("unexpected price_desc order: %+v", idsOf(result.Vehicles))
	}

	result, err = svc.List(ctx, domain.VehicleListFilter{Sort: domain.VehicleSortNameAsc})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Vehicles[0].Name != "City" {
		t.Fatalf("unexpected name_asc order: %+v", idsOf(result.Vehicles))
	}
}

func TestCatalogService_ListPagination(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(catalogFixture())

	result, err := svc.List(ctx, domain.VehicleListFilter{Sort: domain.VehicleSortPriceAsc, Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Total != 4 {
		t.Fatalf("expected total to count all matches, got %d", result.Total)
	}
	if len(result.Vehicles) != 2 || result.Vehicles[0].ID != "2" || result.Vehicles[1].ID != "4" {
		t.Fatalf("unexpected page: %+v", idsOf(result.Vehicles))
	}
	if result.Limit != 2 || result.Offset != 1 {
		t.Fatalf("expected echoed pagination, got limit=%d offset=%d", result.Limit, result.Offset)
	}

	// Defaults and clamps.
	result, err = svc.List(ctx, domain.VehicleListFilter{Limit: -5, Offset: -3})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Limit != 50 || result.Offset != 0 {
		t.Fatalf("expected defaulted pagination, got limit=%d offset=%d", result.Limit, result.Offset)
	}

	result, err = svc.List(ctx, domain.VehicleListFilter{Limit: 1000, Offset: 99})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if result.Limit != 200 {
		t.Fatalf("expected limit clamped to 200, got %d", result.Limit)
	}
	if len(result.Vehicles) != 0 {
		t.Fatalf("expected empty page beyond the end, got %d items", len(result.Vehicles))
	}
}

func TestCatalogService_GetBySlug(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(catalogFixture())

	vehicle, err := svc.GetBySlug(ctx, "Swift-2024")
	if err != nil {
		t.Fatalf("GetBySlug returned error: %v", err)
	}
	if vehicle.ID != "1" {
		t.Fatalf("expected vehicle 1, got %q", vehicle.ID)
	}

	// Raw id fallback for older links.
	vehicle, err = svc.GetBySlug(ctx, "3")
	if err != nil {
		t.Fatalf("GetBySlug by id returned error: %v", err)
	}
	if vehicle.Slug != "civic-2024" {
		t.Fatalf("expected civic by id fallback, got %q", vehicle.Slug)
	}

	if _, err := svc.GetBySlug(ctx, "no-such-car"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
	if _, err := svc.GetBySlug(ctx, "  "); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound for blank slug, got %v", err)
	}
}

func TestCatalogService_VehiclesByIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(catalogFixture())

	vehicles, err := svc.VehiclesByIDs(ctx, []string{"3", "missing", "1"})
	if err != nil {
		t.Fatalf("VehiclesByIDs returned error: %v", err)
	}
	if len(vehicles) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(vehicles))
	}
	if vehicles[0].ID != "3" || vehicles[1].ID != "1" {
		t.Fatalf("expected input order preserved, got %+v", idsOf(vehicles))
	}

	vehicles, err = svc.VehiclesByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("VehiclesByIDs returned error: %v", err)
	}
	if len(vehicles) != 0 {
		t.Fatalf("expected empty result for no ids, got %d", len(vehicles))
	}
}

func idsOf(vehicles []domain.Vehicle) []string {
	ids := make([]string, len(vehicles))
	for i, vehicle := range vehicles {
		ids[i] = vehicle.ID
	}
	return ids
}
