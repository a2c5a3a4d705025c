package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultRoles returns the role set assigned to users created without an
// explicit role list.
func DefaultRoles() []string {
	return []string{RoleUser}
}

// User is the persisted account record. The password hash never leaves the
// directory/auth boundary: it is excluded from JSON serialization entirely.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity returns the public projection of the user: what goes into token
// claims and what callers outside the auth boundary may see.
func (u *User) Identity() Identity {
	roles := make([]string, len(u.Roles))
	copy(roles, u.Roles)
	return Identity{
		SubjectID: u.ID,
		Username:  u.Username,
		Roles:     roles,
	}
}
