package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/carhive/carhive-api/internal/domain"
)

type UserRepository interface {
	CreateEmailUser(ctx context.Context, email string, name *string, passwordHash, passwordSalt []byte) (*domain.User, error)
	UpsertGoogleUser(ctx context.Context, email string, name *string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
