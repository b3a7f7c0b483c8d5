package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/JackchrisO/Synapse/internal/domain/session"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const SessionKey contextKey = "session"

// Middleware validates the bearer token and puts the session into the
// request context.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := ctx.Header("Authorization")

		if len(token) < 7 || token[:7] != "Bearer " {
			a.unauthorized(ctx)
			return
		}

		sess, err := a.session.Validate(ctx.Context(), token[7:])
		if err != nil {
			a.log.Debug("session validation failed", "error", err)
			a.unauthorized(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), SessionKey, sess)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("encode unauthorized response", "error", err)
	}
}

func GetSession(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(session.Session)
	return sess, ok
}

// WithSession is the test hook for handlers that read the session from
// the context without going through the middleware.
func WithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}
