package user

import (
	"context"
)

type Repository interface {
	// Create persists a new account. Returns ErrUserExists when the
	// username is already taken.
	Create(ctx context.Context, account *Account) error
	// FindByUsername returns ErrNotFound when no such account exists.
	// Usernames are case-sensitive as typed.
	FindByUsername(ctx context.Context, username string) (*Account, error)
}
