package model

import "time"

// User represents an account. Every product record is bound to exactly one
// user; there is no sharing between accounts.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
