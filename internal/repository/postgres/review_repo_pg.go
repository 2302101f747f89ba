package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts in a single statement. The review_user_vehicle_key unique
// index on (user_id, vehicle_id) makes concurrent duplicate submissions lose
// with a 23505, which callers translate to their conflict error.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	const query = `
		INSERT INTO review (user_id, vehicle_id, rating, comment)
		VALUES (:user_id, :vehicle_id, :rating, :comment)
		RETURNING id, user_id, vehicle_id, rating, comment, created_at
	`
	args := map[string]any{
		"user_id":    review.UserID,
		"vehicle_id": review.VehicleID,
		"rating":     review.Rating,
		"comment":    review.Comment,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Review
		if err := rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, sql.ErrNoRows
}

func (r *ReviewRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Review, error) {
	const query = `
		SELECT
			r.id,
			r.user_id,
			r.vehicle_id,
			r.rating,
			r.comment,
			r.created_at,
			u.name AS reviewer_name,
			u.email AS reviewer_email
		FROM review r
		JOIN user_account u ON u.id = r.user_id
		WHERE r.vehicle_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`
	return r.collectReviews(ctx, query, vehicleID)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Review, error) {
	const query = `
		SELECT
			r.id,
			r.user_id,
			r.vehicle_id,
			r.rating,
			r.comment,
			r.created_at,
			u.name AS reviewer_name,
			u.email AS reviewer_email
		FROM review r
		JOIN user_account u ON u.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`
	return r.collectReviews(ctx, query, userID)
}

func (r *ReviewRepository) AggregateByVehicle(ctx context.Context, vehicleID string) (int, float64, error) {
	const query = `
		SELECT
			COUNT(*)::int AS total_reviews,
			COALESCE(AVG(r.rating)::float8, 0) AS average_rating
		FROM review r
		WHERE r.vehicle_id = $1
	`

	var row struct {
		Total   int     `db:"total_reviews"`
		Average float64 `db:"average_rating"`
	}
	if err := r.db.GetContext(ctx, &row, query, vehicleID); err != nil {
		return 0, 0, err
	}
	return row.Total, row.Average, nil
}

func (r *ReviewRepository) collectReviews(ctx context.Context, query string, arg any) ([]domain.Review, error) {
	rows, err := r.db.QueryxContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.StructScan(&review); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
