package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/service"
	"github.com/carhive/carhive-api/internal/util"
)

type BookmarkHandler struct {
	bookmarks *service.BookmarkService
	catalog   *service.CatalogService
}

type BookmarkItemResponse struct {
	VehicleID string `json:"vehicle_id"`
	SavedAt   string `json:"saved_at"`
}

func RegisterBookmarks(e *echo.Echo, auth *service.AuthService, bookmarks *service.BookmarkService, catalog *service.CatalogService) {
	handler := &BookmarkHandler{
		bookmarks: bookmarks,
		catalog:   catalog,
	}

	protected := e.Group("/api/v1/users/me/bookmarks", RequireAuth(auth))
	protected.GET("", handler.listBookmarks)
	protected.POST("", handler.addBookmark)
	protected.DELETE("/:vehicle_id", handler.removeBookmark)
}

// addBookmark handles POST /api/v1/users/me/bookmarks. Adding a vehicle that
// is already saved succeeds and returns the unchanged set.
func (h *BookmarkHandler) addBookmark(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req struct {
		VehicleID string `json:"vehicle_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.VehicleID) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("vehicle_id is required"))
	}

	memberships, err := h.bookmarks.Save(c.Request().Context(), user.ID, req.VehicleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookmarkValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not update bookmarks"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"bookmarks": toBookmarkItems(memberships),
		"message":   "Vehicle saved to bookmarks",
	})
}

// removeBookmark handles DELETE /api/v1/users/me/bookmarks/{vehicle_id}.
// Removing a vehicle that was never saved is an error, not a no-op.
func (h *BookmarkHandler) removeBookmark(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	vehicleID := strings.TrimSpace(c.Param("vehicle_id"))

	memberships, err := h.bookmarks.Remove(c.Request().Context(), user.ID, vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookmarkValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrBookmarkNotFound):
			return c.JSON(http.StatusNotFound, util.Error("vehicle is not in your bookmarks"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not update bookmarks"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"bookmarks": toBookmarkItems(memberships),
		"message":   "Vehicle removed from bookmarks",
	})
}

// listBookmarks handles GET /api/v1/users/me/bookmarks. The response carries
// the raw membership plus full catalog entries for the ids the catalog knows;
// unknown ids stay in the membership list undecorated.
func (h *BookmarkHandler) listBookmarks(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	memberships, err := h.bookmarks.List(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load bookmarks"))
	}

	ids := make([]string, 0, len(memberships))
	for _, item := range memberships {
		ids = append(ids, item.VehicleID)
	}

	vehicles, err := h.catalog.VehiclesByIDs(c.Request().Context(), ids)
	if err != nil {
		// Catalog trouble must not hide the user's own data.
		vehicles = []domain.Vehicle{}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"bookmarks": toBookmarkItems(memberships),
		"vehicles":  vehicles,
	})
}

func toBookmarkItems(memberships []domain.Bookmark) []BookmarkItemResponse {
	items := make([]BookmarkItemResponse, 0, len(memberships))
	for _, item := range memberships {
		items = append(items, BookmarkItemResponse{
			VehicleID: item.VehicleID,
			SavedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return items
}
