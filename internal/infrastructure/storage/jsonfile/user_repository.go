package jsonfile

import (
	"context"
	"fmt"
	"time"

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
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[account.Username]; ok {
		return user.ErrUserExists
	}

	r.s.users[account.Username] = docFromAccount(account)

	if err := r.s.saveUsers(); err != nil {
		// Roll back so memory never disagrees with the file.
		delete(r.s.users, account.Username)
		return fmt.Errorf("persist accounts: %w", err)
	}

	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	doc, ok := r.s.users[username]
	if !ok {
		return nil, user.ErrNotFound
	}

	account := accountFromDoc(username, doc)
	return &account, nil
}

func docFromAccount(a *user.Account) accountDoc {
	doc := accountDoc{
		Name:         a.Username,
		Age:          a.Age,
		Sex:          a.Sex,
		PasswordHash: a.PasswordHash,
		Salt:         a.Salt,
		Reason:       a.Reason,
	}
	if !a.CreatedAt.IsZero() {
		doc.CreatedAt = a.CreatedAt.UTC().Format(time.RFC3339)
	}
	return doc
}

func accountFromDoc(username string, doc accountDoc) user.Account {
	account := user.Account{
		Username:     username,
		Age:          doc.Age,
		Sex:          doc.Sex,
		Reason:       doc.Reason,
		PasswordHash: doc.PasswordHash,
		Salt:         doc.Salt,
	}
	if doc.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, doc.CreatedAt); err == nil {
			account.CreatedAt = t
		}
	}
	return account
}
