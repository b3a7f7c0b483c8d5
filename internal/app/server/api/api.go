//POST /user/register              # Registro (público)
//POST /user/login                 # Login (público)
//POST /api/records/{categoria}    # Criar registro tipado (auth)
//GET  /api/records/{categoria}    # Listar registros da categoria (auth)
//GET  /api/summary?days=N         # Resumo por categoria (auth)
//GET  /health                     # Health check (público)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "github.com/JackchrisO/Synapse/internal/app/server/api/http/health"
	"github.com/JackchrisO/Synapse/internal/app/server/api/http/middleware"
	"github.com/JackchrisO/Synapse/internal/app/server/api/http/middleware/auth"
	"github.com/JackchrisO/Synapse/internal/app/server/api/http/middleware/logger"
	recordAPI "github.com/JackchrisO/Synapse/internal/app/server/api/http/record"
	summaryAPI "github.com/JackchrisO/Synapse/internal/app/server/api/http/summary"
	userAPI "github.com/JackchrisO/Synapse/internal/app/server/api/http/user"
	"github.com/JackchrisO/Synapse/internal/config"
	"github.com/JackchrisO/Synapse/internal/domain/record"
	"github.com/JackchrisO/Synapse/internal/domain/session"
	"github.com/JackchrisO/Synapse/internal/domain/summary"
	"github.com/JackchrisO/Synapse/internal/domain/user"
)

type Handlers struct {
	Health  *healthAPI.Handler
	User    *userAPI.Handler
	Record  *recordAPI.Handler
	Summary *summaryAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
// The repositories come from whichever storage driver the config chose.
func New(cfg *config.Config, users user.Repository, records record.Repository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Synapse API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, users, records, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Record.SetupRoutes(API)
	h.Summary.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, users user.Repository, records record.Repository, log *slog.Logger) *Handlers {
	sessionRepo := session.NewMemoryRepository()
	sessionService := session.NewService(sessionRepo, cfg.Auth.SessionTTL, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userService := user.NewService(users, hasher(cfg), user.NewRegisterValidator(), user.BootstrapCredentials{
		Login:    cfg.Auth.BootstrapLogin,
		Password: cfg.Auth.BootstrapPassword,
	}, log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	recordService := record.NewService(records, users, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	recordHandler := recordAPI.NewHandler(recordService, log, middlewares.GetAllAndClear())

	summaryService := summary.NewService(records, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	summaryHandler := summaryAPI.NewHandler(summaryService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		User:    userHandler,
		Record:  recordHandler,
		Summary: summaryHandler,
	}
}

func hasher(cfg *config.Config) user.Hasher {
	if cfg.Auth.HashScheme == config.HashArgon2id {
		return user.Argon2Hasher{}
	}
	return user.SHA256Hasher{}
}
