package domain

import "time"

// User represents a user account in the system. Accounts are created and
// managed by the surrounding CRUD service; the chat core only reads them.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenClaims is the identity extracted from a verified access token.
type TokenClaims struct {
	UserID int64
	Role   string
}
