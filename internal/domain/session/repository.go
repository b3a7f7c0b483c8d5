package session

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidSession = errors.New("invalid session")

type Repository interface {
	Create(ctx context.Context, tokenHash string, sess Session, expiresAt time.Time) error
	Validate(ctx context.Context, tokenHash string) (Session, error)
}
