package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carhive/carhive-api/internal/domain"
)

func TestParseVehicleSort(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.VehicleSort
	}{
		{"price_asc", domain.VehicleSortPriceAsc},
		{" PRICE_DESC ", domain.VehicleSortPriceDesc},
		{"name_asc", domain.VehicleSortNameAsc},
		{"", domain.VehicleSortDefault},
		{"rating", domain.VehicleSortDefault},
	}
	for _, tc := range cases {
		if got := parseVehicleSort(tc.raw); got != tc.want {
			t.Fatalf("parseVehicleSort(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParsePagination(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/vehicles?limit=10&offset=30", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	limit, offset := parsePagination(c, 50, 0)
	if limit != 10 || offset != 30 {
		t.Fatalf("expected limit=10 offset=30, got limit=%d offset=%d", limit, offset)
	}

	// Missing and malformed values fall back to the defaults.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	limit, offset = parsePagination(c, 50, 0)
	if limit != 50 || offset != 0 {
		t.Fatalf("expected defaults, got limit=%d offset=%d", limit, offset)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/vehicles?limit=abc&offset=-4", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	limit, offset = parsePagination(c, 50, 0)
	if limit != 50 || offset != 0 {
		t.Fatalf("expected defaults for malformed values, got limit=%d offset=%d", limit, offset)
	}
}
