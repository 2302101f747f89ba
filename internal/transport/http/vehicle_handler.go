package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/service"
	"github.com/carhive/carhive-api/internal/util"
)

type VehicleHandler struct {
	catalog *service.CatalogService
}

func RegisterVehicles(e *echo.Echo, catalog *service.CatalogService) {
	handler := &VehicleHandler{catalog: catalog}

	group := e.Group("/api/v1/vehicles")
	group.GET("", handler.listVehicles)
	group.GET("/:slug", handler.getVehicle)
}

// listVehicles handles GET /api/v1/vehicles
func (h *VehicleHandler) listVehicles(c echo.Context) error {
	filter := domain.VehicleListFilter{
		Search: c.QueryParam("search"),
		Brand:  c.QueryParam("brand"),
		Sort:   parseVehicleSort(c.QueryParam("sort")),
	}
	filter.Limit, filter.Offset = parsePagination(c, 50, 0)

	result, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load vehicles"))
	}
	return c.JSON(http.StatusOK, result)
}

// getVehicle handles GET /api/v1/vehicles/{slug}
func (h *VehicleHandler) getVehicle(c echo.Context) error {
	vehicle, err := h.catalog.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVehicleNotFound):
			return c.JSON(http.StatusNotFound, util.Error("vehicle not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load vehicle"))
		}
	}
	return c.JSON(http.StatusOK, vehicle)
}

func parsePagination(c echo.Context, defaultLimit, defaultOffset int) (int, int) {
	limit := defaultLimit
	offset := defaultOffset
	if v := strings.TrimSpace(c.QueryParam("limit")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if v := strings.TrimSpace(c.QueryParam("offset")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

func parseVehicleSort(raw string) domain.VehicleSort {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "price_asc":
		return domain.VehicleSortPriceAsc
	case "price_desc":
		return domain.VehicleSortPriceDesc
	case "name_asc":
		return domain.VehicleSortNameAsc
	default:
		return domain.VehicleSortDefault
	}
}
