package ports

import (
	"context"

	"github.com/accounthub/user-service/internal/core/domain"
)

// CreateUserInput carries the fields for a new user. Roles may be nil, in
// which case the directory assigns domain.DefaultRoles().
type CreateUserInput struct {
	Username string
	Password string
	Roles    []string
}

// UpdateUserInput carries a full or partial update. Nil pointers (and a nil
// role slice) mean "leave untouched"; the handler layer decides which fields
// are mandatory for PUT versus PATCH.
type UpdateUserInput struct {
	Username *string
	Password *string
	Roles    []string
}

// UserService is the directory: CRUD over user records with username
// uniqueness enforcement and password hashing.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Replace(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Patch(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
