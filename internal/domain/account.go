package domain

import "time"

// Account is the domain entity for a signup/login account.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
