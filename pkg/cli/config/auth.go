package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/gittales/pkg/controller/server"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra/jwt"
	"github.com/m-mizutani/gittales/pkg/infra/password"
	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	accessSecret   types.JWTSecret `masq:"secret"`
	refreshSecret  types.JWTSecret `masq:"secret"`
	accessTTL      time.Duration
	refreshTTL     time.Duration
	bcryptCost     int
	insecureCookie bool
}

func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jwt-access-secret",
			Usage:       "Secret to sign access tokens",
			Category:    "Auth",
			Destination: (*string)(&x.accessSecret),
			Sources:     cli.EnvVars("GITTALES_JWT_ACCESS_SECRET"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "jwt-refresh-secret",
			Usage:       "Secret to sign refresh tokens, must differ from access secret",
			Category:    "Auth",
			Destination: (*string)(&x.refreshSecret),
			Sources:     cli.EnvVars("GITTALES_JWT_REFRESH_SECRET"),
			Required:    true,
		},
		&cli.DurationFlag{
			Name:        "jwt-access-ttl",
			Usage:       "Lifetime of access tokens",
			Category:    "Auth",
			Value:       jwt.DefaultAccessTTL,
			Destination: &x.accessTTL,
			Sources:     cli.EnvVars("GITTALES_JWT_ACCESS_TTL"),
		},
		&cli.DurationFlag{
			Name:        "jwt-refresh-ttl",
			Usage:       "Lifetime of refresh tokens and the refresh cookie",
			Category:    "Auth",
			Value:       jwt.DefaultRefreshTTL,
			Destination: &x.refreshTTL,
			Sources:     cli.EnvVars("GITTALES_JWT_REFRESH_TTL"),
		},
		&cli.IntFlag{
			Name:        "bcrypt-cost",
			Usage:       "bcrypt cost of password hashing",
			Category:    "Auth",
			Value:       bcrypt.DefaultCost,
			Destination: &x.bcryptCost,
			Sources:     cli.EnvVars("GITTALES_BCRYPT_COST"),
		},
		&cli.BoolFlag{
			Name:        "insecure-cookie",
			Usage:       "Send refresh cookie without Secure attribute (local development only)",
			Category:    "Auth",
			Destination: &x.insecureCookie,
			Sources:     cli.EnvVars("GITTALES_INSECURE_COOKIE"),
		},
	}
}

func (x *Auth) NewSigner() (*jwt.Signer, error) {
	return jwt.New(x.accessSecret, x.refreshSecret,
		jwt.WithAccessTTL(x.accessTTL),
		jwt.WithRefreshTTL(x.refreshTTL),
	)
}

func (x *Auth) NewHasher() *password.Hasher {
	return password.New(x.bcryptCost)
}

// ServerOptions returns refresh cookie settings of the HTTP server
func (x *Auth) ServerOptions() []server.Option {
	options := []server.Option{
		server.WithRefreshCookieMaxAge(x.refreshTTL),
	}
	if x.insecureCookie {
		options = append(options, server.WithInsecureCookie())
	}
	return options
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("accessSecret.len", len(x.accessSecret)),
		slog.Int("refreshSecret.len", len(x.refreshSecret)),
		slog.Duration("accessTTL", x.accessTTL),
		slog.Duration("refreshTTL", x.refreshTTL),
		slog.Int("bcryptCost", x.bcryptCost),
		slog.Bool("insecureCookie", x.insecureCookie),
	)
}
