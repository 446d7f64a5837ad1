package config

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry receives 5xx errors via errutil.HandleError. Reporting is disabled
// when DSN is empty.
type Sentry struct {
	dsn         string `masq:"secret"`
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("GITTALES_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("GITTALES_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release name attached to Sentry events",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("GITTALES_SENTRY_RELEASE"),
		},
	}
}

func (x *Sentry) Enabled() bool {
	return x.dsn != ""
}

// Configure initializes the global Sentry hub. The returned function flushes
// buffered events and should be deferred by the caller.
func (x *Sentry) Configure(ctx context.Context) (func(), error) {
	if !x.Enabled() {
		logging.From(ctx).Warn("sentry is not configured")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}

func (x *Sentry) LogValue() slog.Value {
	host := ""
	if u, err := url.Parse(x.dsn); err == nil {
		host = u.Host
	}
	return slog.GroupValue(
		slog.String("host", host),
		slog.String("environment", x.environment),
		slog.String("release", x.release),
	)
}
