package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/user"
)

// Session identifies the authenticated caller of a request. It replaces the
// process-wide "current user" variable of the mobile prototypes: every
// store operation receives the identity explicitly through context.
type Session struct {
	Username  string
	Bootstrap bool
}

type Servicer interface {
	Create(ctx context.Context, identity user.Identity) (string, error)
	Validate(ctx context.Context, token string) (Session, error)
}

type Service struct {
	repo Repository
	ttl  time.Duration
	log  *slog.Logger
}

func NewService(repo Repository, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		log:  log.With("component", "session_service"),
	}
}

func (s *Service) Create(ctx context.Context, identity user.Identity) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)
	tokenHash := sha256.Sum256([]byte(token))

	expiresAt := time.Now().Add(s.ttl)
	sess := Session{Username: identity.Username, Bootstrap: identity.Bootstrap}
	if err := s.repo.Create(ctx, hex.EncodeToString(tokenHash[:]), sess, expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (Session, error) {
	tokenHash := sha256.Sum256([]byte(token))

	return s.repo.Validate(ctx, hex.EncodeToString(tokenHash[:]))
}
