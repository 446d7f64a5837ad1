package config

import (
	"log/slog"

	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Webhook struct {
	secret types.WebhookSecret `masq:"secret"`
}

func (x *Webhook) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "webhook-secret",
			Usage:       "Secret of GitHub webhook signature (X-Hub-Signature-256)",
			Category:    "Webhook",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("GITTALES_WEBHOOK_SECRET"),
			Required:    true,
		},
	}
}

func (x Webhook) Secret() types.WebhookSecret {
	return x.secret
}

func (x Webhook) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("secret.len", len(x.secret)),
	)
}
