package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
)

var (
	ErrReviewValidation   = errors.New("review validation failed")
	ErrReviewAlreadyExist = errors.New("review already exists for this vehicle")
)

type ReviewSubmitInput struct {
	Rating  int
	Comment string
}

type ReviewService struct {
	reviews ports.ReviewRepository
	catalog ports.CatalogRepository
}

func NewReviewService(reviews ports.ReviewRepository, catalog ports.CatalogRepository) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		catalog: catalog,
	}
}

// SubmitReview persists a new review and returns it together with the fresh
// aggregate for the vehicle. Duplicate detection happens inside the store:
// the insert either wins or comes back as a unique violation, so two
// concurrent submissions for the same (user, vehicle) pair can never both
// succeed.
func (s *ReviewService) SubmitReview(ctx context.Context, userID uuid.UUID, vehicleID string, input ReviewSubmitInput) (*domain.Review, *domain.ReviewAggregate, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	comment := strings.TrimSpace(input.Comment)

	if userID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: user required", ErrReviewValidation)
	}
	if vehicleID == "" {
		return nil, nil, fmt.Errorf("%w: vehicle id required", ErrReviewValidation)
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, nil, err
	}
	if comment == "" {
		return nil, nil, fmt.Errorf("%w: comment required", ErrReviewValidation)
	}

	stored, err := s.reviews.Create(ctx, &domain.Review{
		UserID:    userID,
		VehicleID: vehicleID,
		Rating:    input.Rating,
		Comment:   comment,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, ErrReviewAlreadyExist
		}
		return nil, nil, err
	}

	aggregate, err := s.Aggregate(ctx, vehicleID)
	if err != nil {
		return nil, nil, err
	}
	return stored, aggregate, nil
}

// ListVehicleReviews returns reviews newest first plus the aggregate, both
// read from current store state on every call.
func (s *ReviewService) ListVehicleReviews(ctx context.Context, vehicleID string) (*domain.ReviewListResult, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, fmt.Errorf("%w: vehicle id required", ErrReviewValidation)
	}

	reviews, err := s.reviews.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	aggregate, err := s.Aggregate(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	return &domain.ReviewListResult{
		VehicleID: vehicleID,
		Reviews:   reviews,
		Aggregate: *aggregate,
	}, nil
}

// ListUserReviews returns the user's reviews newest first, decorated with
// vehicle name/brand from the catalog. The catalog join happens after the
// store read and never fails the operation: unknown ids stay undecorated.
func (s *ReviewService) ListUserReviews(ctx context.Context, userID uuid.UUID) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return reviews, nil
	}

	vehicles, err := s.catalog.All(ctx)
	if err != nil {
		return reviews, nil
	}
	byID := make(map[string]domain.Vehicle, len(vehicles))
	for _, vehicle := range vehicles {
		byID[vehicle.ID] = vehicle
	}

	for i := range reviews {
		if vehicle, ok := byID[reviews[i].VehicleID]; ok {
			reviews[i].Vehicle = &domain.VehicleRef{
				Name:  vehicle.Name,
				Brand: vehicle.Brand,
			}
		}
	}
	return reviews, nil
}

// Aggregate recomputes from the review set on every call; nothing is stored.
// The average is rounded to one decimal place and is 0 when no reviews exist.
func (s *ReviewService) Aggregate(ctx context.Context, vehicleID string) (*domain.ReviewAggregate, error) {
	count, average, err := s.reviews.AggregateByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		average = 0
	}
	return &domain.ReviewAggregate{
		VehicleID:     vehicleID,
		AverageRating: math.Round(average*10) / 10,
		TotalReviews:  count,
	}, nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrReviewValidation)
	}
	return nil
}
