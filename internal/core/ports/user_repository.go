package ports

import (
	"context"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// UserRepository defines the interface for identity persistence and lookup.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
