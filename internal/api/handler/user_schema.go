package handler

import (
	"time"

	"github.com/accounthub/user-service/internal/core/domain"
)

// --- Request types ---

type createUserRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=64"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles,omitempty" validate:"omitempty,min=1,dive,required"`
}

type replaceUserRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=64"`
	Password string   `json:"password,omitempty" validate:"omitempty,min=8"`
	Roles    []string `json:"roles,omitempty" validate:"omitempty,min=1,dive,required"`
}

type patchUserRequest struct {
	Username *string  `json:"username,omitempty" validate:"omitempty,min=3,max=64"`
	Password *string  `json:"password,omitempty" validate:"omitempty,min=8"`
	Roles    []string `json:"roles,omitempty" validate:"omitempty,min=1,dive,required"`
}

// --- Response types ---

// userResponse is the public projection of a user record. The password hash
// is never part of any response payload.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
