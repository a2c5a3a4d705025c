package ports

import (
	"context"

	"github.com/accounthub/user-service/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	// FindByID fails with domain.ErrInvalidUserID when id is not a
	// well-formed store identifier, and domain.ErrUserNotFound when no
	// record matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ExistsByUsername is an exact, case-sensitive match.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
