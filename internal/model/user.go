package model

// User represents the authenticated user's profile as returned by the backend
type User struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"nombre"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserPatch carries a partial profile update; zero-valued fields are omitted
// from the request body so the backend leaves them untouched.
type UserPatch struct {
	Name     string `json:"nombre,omitempty"`
	Username string `json:"username,omitempty"`
}

// IsEmpty returns true when the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == "" && p.Username == ""
}

// Registration is the request body for creating a new account
type Registration struct {
	Name     string `json:"nombre"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the request body for a login call
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginPayload is the object carried in a successful login envelope
type LoginPayload struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   int    `json:"idUsuario"`
}
