package domain

// Identity is the verified caller for the duration of one request. It is
// reconstructed from token claims on every protected request and never
// persisted.
type Identity struct {
	SubjectID string   `json:"subject_id"`
	Username  string   `json:"username"`
	Roles     []string `json:"roles"`
}

// HasRole reports whether the identity carries the given role label.
func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the identity carries at least one of the given
// role labels. An empty list matches nothing.
func (i Identity) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if i.HasRole(r) {
			return true
		}
	}
	return false
}
