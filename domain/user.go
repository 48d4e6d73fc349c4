package domain

import "time"

// User is an account, keyed by its unique username.
type User struct {
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
