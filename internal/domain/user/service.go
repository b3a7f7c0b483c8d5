package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) error
	Authenticate(ctx context.Context, username, password string) (Identity, error)
}

// RegisterRequest carries the registration form fields, validated once at
// this boundary instead of being plucked out of widgets downstream.
type RegisterRequest struct {
	Username string `json:"username" doc:"Unique account name, case-sensitive"`
	Password string `json:"password" doc:"Plaintext password, hashed before storage"`
	Age      string `json:"age" doc:"Age at registration"`
	Sex      string `json:"sex,omitempty" doc:"Optional"`
	Reason   string `json:"reason" doc:"Reason for using the app" enum:"Epilepsia,Cuidado psicológico,Ambos"`
}

// BootstrapCredentials is the configured admin backdoor. Both fields empty
// means disabled; a match authenticates without consulting the repository.
type BootstrapCredentials struct {
	Login    string
	Password string
}

func (b BootstrapCredentials) enabled() bool {
	return b.Login != "" && b.Password != ""
}

func (b BootstrapCredentials) matches(username, password string) bool {
	if !b.enabled() {
		return false
	}
	loginOK := subtle.ConstantTimeCompare([]byte(b.Login), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(b.Password), []byte(password)) == 1
	return loginOK && passOK
}

type Service struct {
	repo      Repository
	hasher    Hasher
	validator Validator
	bootstrap BootstrapCredentials
	log       *slog.Logger
}

func NewService(repo Repository, hasher Hasher, validator Validator, bootstrap BootstrapCredentials, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
		bootstrap: bootstrap,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	if err := s.validator.ValidateRegister(req); err != nil {
		s.log.Debug("validation failed", "username", req.Username, "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// The bootstrap login must not be shadowed by a regular account.
	if s.bootstrap.enabled() && req.Username == s.bootstrap.Login {
		return ErrUserExists
	}

	salt := s.hasher.NewSalt()
	account := &Account{
		Username:     req.Username,
		Age:          req.Age,
		Sex:          req.Sex,
		Reason:       req.Reason,
		PasswordHash: s.hasher.Hash(req.Password, salt),
		Salt:         salt,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, ErrUserExists) {
			return ErrUserExists
		}
		return fmt.Errorf("create account: %w", err)
	}

	s.log.Info("account registered", "username", req.Username, "reason", req.Reason)
	return nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (Identity, error) {
	if s.bootstrap.matches(username, password) {
		s.log.Warn("bootstrap login used", "username", username)
		return Identity{Username: username, Bootstrap: true}, nil
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Identity{}, ErrNotFound
		}
		return Identity{}, fmt.Errorf("find account: %w", err)
	}

	candidate := s.hasher.Hash(password, account.Salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(account.PasswordHash)) != 1 {
		return Identity{}, ErrInvalidAuth
	}

	return Identity{Username: account.Username, Reason: account.Reason}, nil
}
