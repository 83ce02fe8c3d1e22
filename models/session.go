package models

import "time"

// Credentials are the login form fields sent to the remote auth endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is a bearer token issued by the remote service after login.
type Token struct {
	SignedString string `json:"token"`
	UserID       int64  `json:"-"`
}

// Session is the locally persisted authenticated session. A single session
// row survives restarts so the sync engine can replay writes without asking
// the user to log in again.
type Session struct {
	Token   string    `json:"token"`
	UserID  int64     `json:"user_id"`
	SavedAt time.Time `json:"saved_at"`
}
