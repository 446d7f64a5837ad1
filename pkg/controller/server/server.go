package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultBodyLimit is the max size of a request body
	DefaultBodyLimit = 25 << 20

	DefaultRefreshCookieMaxAge = 7 * 24 * time.Hour
)

type Server struct {
	mux *chi.Mux
	uc  interfaces.UseCase
	cfg *config
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	webhookSecret       types.WebhookSecret
	bodyLimit           int64
	refreshCookieMaxAge time.Duration
	insecureCookie      bool
}

type Option func(*config)

func WithWebhookSecret(secret types.WebhookSecret) Option {
	return func(cfg *config) {
		cfg.webhookSecret = secret
	}
}

func WithBodyLimit(limit int64) Option {
	return func(cfg *config) {
		cfg.bodyLimit = limit
	}
}

func WithRefreshCookieMaxAge(maxAge time.Duration) Option {
	return func(cfg *config) {
		cfg.refreshCookieMaxAge = maxAge
	}
}

// WithInsecureCookie drops the Secure attribute of the refresh token cookie.
// Only for local development over plain HTTP.
func WithInsecureCookie() Option {
	return func(cfg *config) {
		cfg.insecureCookie = true
	}
}

// New builds the HTTP router. A webhook secret is required.
func New(uc interfaces.UseCase, options ...Option) (*Server, error) {
	cfg := &config{
		bodyLimit:           DefaultBodyLimit,
		refreshCookieMaxAge: DefaultRefreshCookieMaxAge,
	}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.webhookSecret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "webhook secret is required")
	}

	s := &Server{
		uc:  uc,
		cfg: cfg,
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/events", func(r chi.Router) {
		r.Use(limitBody(cfg.bodyLimit))
		r.Post("/git-webhooks", s.handleGitWebhook)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Use(limitBody(cfg.bodyLimit))
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/refresh", s.handleRefresh)

		r.Group(func(r chi.Router) {
			r.Use(authenticate(uc))
			r.Post("/logout", s.handleLogout)
			r.Get("/me", s.handleMe)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticate(uc))
		r.Get("/repos", s.handleListRepositories)
		r.Get("/repos/{repoID}/commits", s.handleListRepositoryCommits)
		r.Post("/sync/{owner}/{repo}/pull-requests", s.handleSyncPullRequests)
		r.Get("/pull-requests/{prID}", s.handleGetPullRequest)
	})

	s.mux = r
	return s, nil
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
