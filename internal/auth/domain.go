package auth

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Account is the authenticated user profile returned by the backend.
type Account struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// LoginResult carries the bearer token and the account it belongs to.
type LoginResult struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}
