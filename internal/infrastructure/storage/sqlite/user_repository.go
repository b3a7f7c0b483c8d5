package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/user"
)

type UserRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewUserRepository(s *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		s:   s,
		log: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, account *user.Account) error {
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO accounts (username, age, sex, reason, password_hash, salt, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.Username, account.Age, account.Sex, account.Reason,
		account.PasswordHash, account.Salt, account.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return user.ErrUserExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	var a user.Account
	err := r.s.db.QueryRowContext(ctx,
		`SELECT username, age, sex, reason, password_hash, salt, created_at
         FROM accounts WHERE username = ?`, username).
		Scan(&a.Username, &a.Age, &a.Sex, &a.Reason, &a.PasswordHash, &a.Salt, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}
	return &a, nil
}
