package domain

import "errors"

// Sentinel errors for the user/auth domain. The HTTP boundary maps each of
// these to a deterministic status code; none are retried.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("insufficient role")
)
