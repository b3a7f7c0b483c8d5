// Package client is the terminal companion to the Synapse server: it
// registers and authenticates accounts, submits health records and
// fetches summaries, keeping the session token on disk between runs.
package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/app/client/config"
)

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
	}

	if token, err := app.loadToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		log.Debug("session token loaded from file")
	}

	return app, nil
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, req RegisterRequest) error {
	return a.httpClient.Register(ctx, req)
}

// Login authenticates and persists the returned token for later runs.
func (a *App) Login(ctx context.Context, username, password string) (LoginResult, error) {
	result, err := a.httpClient.Login(ctx, username, password)
	if err != nil {
		return LoginResult{}, err
	}

	if err := a.saveToken(result.Token); err != nil {
		a.log.Warn("could not persist session token", "error", err)
	}

	return result, nil
}

func (a *App) AddRecord(ctx context.Context, category string, body any) (CreateResult, error) {
	return a.httpClient.CreateRecord(ctx, category, body)
}

func (a *App) ListRecords(ctx context.Context, category, username string) ([]RecordView, error) {
	return a.httpClient.ListRecords(ctx, category, username)
}

func (a *App) Summary(ctx context.Context, days int, username string) (SummaryResult, error) {
	return a.httpClient.Summary(ctx, days, username)
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (a *App) saveToken(token string) error {
	return os.WriteFile(a.config.TokenPath, []byte(token), 0600)
}
