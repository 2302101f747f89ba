package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is membership of a vehicle in a user's saved set. The pair
// (UserID, VehicleID) is the identity; there is no surrogate key.
type Bookmark struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	VehicleID string    `db:"vehicle_id" json:"vehicle_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
