package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/service"
	"github.com/carhive/carhive-api/internal/util"
)

type ReviewHandler struct {
	reviews *service.ReviewService
}

type ReviewAuthorResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

type ReviewVehicleResponse struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
}

type ReviewResponse struct {
	ID        uuid.UUID              `json:"id"`
	VehicleID string                 `json:"vehicle_id"`
	Rating    int                    `json:"rating"`
	Comment   string                 `json:"comment"`
	CreatedAt time.Time              `json:"created_at"`
	Reviewer  ReviewAuthorResponse   `json:"reviewer"`
	Vehicle   *ReviewVehicleResponse `json:"vehicle,omitempty"`
}

type ReviewAggregateResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

type ReviewCreateResponse struct {
	Review    ReviewResponse          `json:"review"`
	Aggregate ReviewAggregateResponse `json:"aggregate"`
}

type ReviewListResponse struct {
	VehicleID     string           `json:"vehicle_id"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int              `json:"total_reviews"`
	Reviews       []ReviewResponse `json:"reviews"`
}

type reviewCreateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func RegisterReviews(e *echo.Echo, auth *service.AuthService, reviews *service.ReviewService) {
	handler := &ReviewHandler{reviews: reviews}

	public := e.Group("/api/v1/vehicles/:vehicle_id/reviews")
	public.GET("", handler.listVehicleReviews)

	protected := e.Group("/api/v1/vehicles/:vehicle_id/reviews", RequireAuth(auth))
	protected.POST("", handler.createReview)

	mine := e.Group("/api/v1/users/me/reviews", RequireAuth(auth))
	mine.GET("", handler.listMyReviews)
}

// createReview handles POST /api/v1/vehicles/{vehicle_id}/reviews
func (h *ReviewHandler) createReview(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	vehicleID := strings.TrimSpace(c.Param("vehicle_id"))
	if vehicleID == "" {
		return c.JSON(http.StatusBadRequest, util.Error("vehicle id required"))
	}

	var req reviewCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	review, aggregate, err := h.reviews.SubmitReview(c.Request().Context(), user.ID, vehicleID, service.ReviewSubmitInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrReviewAlreadyExist):
			return c.JSON(http.StatusConflict, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to create review"))
		}
	}

	resp := ReviewCreateResponse{
		Review:    toReviewResponse(*review),
		Aggregate: toAggregateResponse(aggregate),
	}
	return c.JSON(http.StatusCreated, resp)
}

// listVehicleReviews handles GET /api/v1/vehicles/{vehicle_id}/reviews
func (h *ReviewHandler) listVehicleReviews(c echo.Context) error {
	vehicleID := strings.TrimSpace(c.Param("vehicle_id"))
	if vehicleID == "" {
		return c.JSON(http.StatusBadRequest, util.Error("vehicle id required"))
	}

	result, err := h.reviews.ListVehicleReviews(c.Request().Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to list reviews"))
		}
	}

	reviews := make([]ReviewResponse, 0, len(result.Reviews))
	for _, review := range result.Reviews {
		reviews = append(reviews, toReviewResponse(review))
	}

	return c.JSON(http.StatusOK, ReviewListResponse{
		VehicleID:     result.VehicleID,
		AverageRating: result.Aggregate.AverageRating,
		TotalReviews:  result.Aggregate.TotalReviews,
		Reviews:       reviews,
	})
}

// listMyReviews handles GET /api/v1/users/me/reviews
func (h *ReviewHandler) listMyReviews(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	reviews, err := h.reviews.ListUserReviews(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to list reviews"))
	}

	payload := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		payload = append(payload, toReviewResponse(review))
	}

	return c.JSON(http.StatusOK, util.Envelope{"reviews": payload})
}

func toReviewResponse(review domain.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        review.ID,
		VehicleID: review.VehicleID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		Reviewer: ReviewAuthorResponse{
			ID:          review.UserID,
			DisplayName: reviewerDisplayName(review),
		},
	}
	if review.Vehicle != nil {
		resp.Vehicle = &ReviewVehicleResponse{
			Name:  review.Vehicle.Name,
			Brand: review.Vehicle.Brand,
		}
	}
	return resp
}

func toAggregateResponse(aggregate *domain.ReviewAggregate) ReviewAggregateResponse {
	if aggregate == nil {
		return ReviewAggregateResponse{}
	}
	return ReviewAggregateResponse{
		AverageRating: aggregate.AverageRating,
		TotalReviews:  aggregate.TotalReviews,
	}
}

func reviewerDisplayName(review domain.Review) string {
	if review.ReviewerName != nil {
		if trimmed := strings.TrimSpace(*review.ReviewerName); trimmed != "" {
			return trimmed
		}
	}
	if review.ReviewerEmail != nil {
		email := strings.TrimSpace(*review.ReviewerEmail)
		if idx := strings.Index(email, "@"); idx > 0 {
			return email[:idx]
		}
	}
	return "Anonymous"
}
