package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateEmailUser(ctx context.Context, email string, name *string, passwordHash, passwordSalt []byte) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, name, password_hash, password_salt)
        VALUES ($1, $2, $3, $4)
        RETURNING id, email, name, password_hash, password_salt, created_at, updated_at
    `

	row := r.db.QueryRowxContext(ctx, query, email, name, passwordHash, passwordSalt)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpsertGoogleUser(ctx context.Context, email string, name *string) (*domain.User, error) {
	const query = `
        INSERT INTO user_account (email, name)
        VALUES ($1, $2)
        ON CONFLICT (email) DO UPDATE
        SET name = COALESCE(EXCLUDED.name, user_account.name),
            updated_at = NOW()
        RETURNING id, email, name, password_hash, password_salt, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, name)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, email, name, password_hash, password_salt, created_at, updated_at
        FROM user_account
        WHERE email = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, email, name, password_hash, password_salt, created_at, updated_at
        FROM user_account
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
