package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/accounthub/user-service/internal/api/metrics"
	"github.com/accounthub/user-service/internal/core/domain"
	"github.com/accounthub/user-service/internal/core/ports"
	"github.com/accounthub/user-service/internal/pkg/password"
)

// UserService is the directory: business logic over the user repository with
// username uniqueness enforcement and password hashing.
//
// Uniqueness is a check-then-write sequence, not a storage-level constraint:
// two concurrent writes with the same new username can both pass the check.
type UserService struct {
	repo   ports.UserRepository
	hasher *password.Hasher
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *password.Hasher, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// Create inserts a new user after an exact-match uniqueness check on the
// username. The password is hashed before it ever reaches the repository;
// a missing role list defaults to {"user"}.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	exists, err := s.repo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = domain.DefaultRoles()
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.Inc()
	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Replace applies a full update. The handler layer guarantees the username is
// present; password and roles follow the same only-if-supplied rules as Patch.
func (s *UserService) Replace(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.update(ctx, id, input)
}

// Patch applies a partial update: absent fields are left untouched.
func (s *UserService) Patch(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.update(ctx, id, input)
}

// update holds the shared replace/patch semantics:
//   - username changes are re-checked for uniqueness (exact match),
//   - the password is re-hashed only when a new plaintext is supplied,
//   - roles are overwritten only when supplied,
//   - the save happens even when nothing effectively changed.
func (s *UserService) update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != user.Username {
		exists, err := s.repo.ExistsByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrUserExists
		}
		user.Username = *input.Username
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if input.Roles != nil {
		user.Roles = input.Roles
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.UsersDeletedTotal.Inc()
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
