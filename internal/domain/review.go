package domain

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	VehicleID string    `db:"vehicle_id" json:"vehicle_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	ReviewerName  *string `db:"reviewer_name" json:"-"`
	ReviewerEmail *string `db:"reviewer_email" json:"-"`

	// Vehicle carries catalog metadata attached after the store read. Nil
	// when the catalog does not know the id.
	Vehicle *VehicleRef `db:"-" json:"vehicle,omitempty"`
}

// VehicleRef is the display subset of catalog metadata joined onto a review.
type VehicleRef struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
}

type ReviewAggregate struct {
	VehicleID     string  `json:"vehicle_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

type ReviewListResult struct {
	VehicleID string          `json:"vehicle_id"`
	Reviews   []Review        `json:"reviews"`
	Aggregate ReviewAggregate `json:"aggregate"`
}
