package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique account name, matched case-sensitively
	// during authentication.
	Username string `json:"username"`

	// Password carries the plaintext password only on inbound
	// register/login requests. It is never persisted and never serialized
	// back to a client.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored instead of the password.
	// Excluded from JSON entirely.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
