package entity

// Session is what the remote auth endpoints return and what the session
// store persists: an opaque bearer token plus the normalized user record.
// The token is never inspected client-side.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
