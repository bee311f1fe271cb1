package entity

const (
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// User mirrors the record owned by the remote API. Some deployments still
// return the identifier under the legacy "id" key, so both are decoded and
// Normalize folds them together.
type User struct {
	ID       string `json:"_id,omitempty"`
	LegacyID string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Normalize guarantees a non-empty ID: the legacy "id" is copied into "_id"
// when "_id" is absent, and "_id" is preserved unchanged when both exist.
func (u User) Normalize() User {
	if u.ID == "" {
		u.ID = u.LegacyID
	}
	return u
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
