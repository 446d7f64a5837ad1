package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub configures the REST API client. Either a token or a GitHub App
// installation is used.
type GitHub struct {
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
	timeout    time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITTALES_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("GITTALES_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("GITTALES_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("GITTALES_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL for GitHub Enterprise",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("GITTALES_GITHUB_BASE_URL"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of a GitHub API request",
			Category:    "GitHub",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("GITTALES_GITHUB_TIMEOUT"),
		},
	}
}

func (x *GitHub) Enabled() bool {
	return x.token != "" || x.appID != 0
}

func (x *GitHub) New() (*github.Client, error) {
	var options []github.Option

	if x.token != "" {
		options = append(options, github.WithToken(x.token))
	}
	if x.appID != 0 {
		if x.installID == 0 || x.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "github-app-install-id and github-app-private-key are required with github-app-id")
		}
		options = append(options, github.WithApp(x.appID, x.installID, x.privateKey))
	}
	if x.baseURL != "" {
		options = append(options, github.WithBaseURL(x.baseURL))
	}
	if x.timeout > 0 {
		options = append(options, github.WithTimeout(x.timeout))
	}

	return github.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("baseURL", x.baseURL),
		slog.Duration("timeout", x.timeout),
	)
}
