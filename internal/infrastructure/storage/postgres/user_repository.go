package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/user"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Create(ctx context.Context, account *user.Account) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO accounts (username, age, sex, reason, password_hash, salt, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		account.Username, account.Age, account.Sex, account.Reason,
		account.PasswordHash, account.Salt, account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrUserExists
		}
		r.log.Error("failed to create account", "username", account.Username, "error", err)
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	var a user.Account
	err := r.pool.QueryRow(ctx,
		`SELECT username, age, sex, reason, password_hash, salt, created_at
         FROM accounts WHERE username = $1`, username).
		Scan(&a.Username, &a.Age, &a.Sex, &a.Reason, &a.PasswordHash, &a.Salt, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		r.log.Error("failed to find account", "username", username, "error", err)
		return nil, fmt.Errorf("select account: %w", err)
	}
	return &a, nil
}
