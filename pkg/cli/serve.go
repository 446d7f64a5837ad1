package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/gittales/pkg/cli/config"
	"github.com/m-mizutani/gittales/pkg/controller/server"
	"github.com/m-mizutani/gittales/pkg/infra"
	"github.com/m-mizutani/gittales/pkg/usecase"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr      string
		bodyLimit int64

		database config.Database
		webhook  config.Webhook
		auth     config.Auth
		github   config.GitHub
		redis    config.Redis
		amqp     config.AMQP
		bigQuery config.BigQuery
		sentry   config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:3000",
			Sources:     cli.EnvVars("GITTALES_ADDR"),
			Destination: &addr,
		},
		&cli.Int64Flag{
			Name:        "body-limit",
			Usage:       "Maximum size of a request body in bytes",
			Value:       server.DefaultBodyLimit,
			Sources:     cli.EnvVars("GITTALES_BODY_LIMIT"),
			Destination: &bodyLimit,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			database.Flags(),
			webhook.Flags(),
			auth.Flags(),
			github.Flags(),
			redis.Flags(),
			amqp.Flags(),
			bigQuery.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("BodyLimit", bodyLimit),
				slog.Any("Database", &database),
				slog.Any("Webhook", webhook),
				slog.Any("Auth", auth),
				slog.Any("GitHub", github),
				slog.Any("Redis", redis),
				slog.Any("AMQP", amqp),
				slog.Any("BigQuery", bigQuery),
				slog.Any("Sentry", &sentry),
			)

			flushSentry, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flushSentry()

			db, closeDB, err := database.New(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			signer, err := auth.NewSigner()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithDatabase(db),
				infra.WithTokenSigner(signer),
				infra.WithPasswordHasher(auth.NewHasher()),
			}

			if github.Enabled() {
				ghClient, err := github.New()
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithGitHub(ghClient))
			}

			if redis.Enabled() {
				guard, closeGuard, err := redis.NewDeliveryGuard(ctx)
				if err != nil {
					return err
				}
				defer closeGuard()
				infraOptions = append(infraOptions, infra.WithDeliveryGuard(guard))
			} else {
				infraOptions = append(infraOptions, infra.WithDeliveryGuard(redis.NewMemoryGuard()))
			}

			if amqp.Enabled() {
				publisher, err := amqp.NewPublisher()
				if err != nil {
					return err
				}
				defer func() {
					if err := publisher.Close(); err != nil {
						logging.Default().Warn("failed to close AMQP publisher", "error", err)
					}
				}()
				infraOptions = append(infraOptions, infra.WithEventPublisher(publisher))
			}

			if bigQuery.Enabled() {
				bqClient, err := bigQuery.NewClient(ctx)
				if err != nil {
					return err
				}
				defer func() {
					if err := bqClient.Close(); err != nil {
						logging.Default().Warn("failed to close BigQuery client", "error", err)
					}
				}()
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			uc := usecase.New(infra.New(infraOptions...))

			serverOptions := append([]server.Option{
				server.WithWebhookSecret(webhook.Secret()),
				server.WithBodyLimit(bodyLimit),
			}, auth.ServerOptions()...)
			s, err := server.New(uc, serverOptions...)
			if err != nil {
				return err
			}

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      60 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
