package cli

import (
	"context"

	"github.com/m-mizutani/gittales/pkg/cli/config"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra"
	"github.com/m-mizutani/gittales/pkg/usecase"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		database config.Database
		bigQuery config.BigQuery
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Export all stored commits to BigQuery",
		Flags: slice.Flatten(
			database.Flags(),
			bigQuery.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting export",
				"Database", &database,
				"BigQuery", bigQuery,
			)

			if !bigQuery.Enabled() {
				return goerr.Wrap(types.ErrInvalidOption, "bq-project-id is required for export")
			}

			db, closeDB, err := database.New(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			bqClient, err := bigQuery.NewClient(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := bqClient.Close(); err != nil {
					logging.Default().Warn("failed to close BigQuery client", "error", err)
				}
			}()

			uc := usecase.New(infra.New(
				infra.WithDatabase(db),
				infra.WithBigQuery(bqClient),
			))

			n, err := uc.BackfillCommits(logging.With(ctx, logging.Default()))
			if err != nil {
				return err
			}

			logging.Default().Info("export completed", "rows", n)
			return nil
		},
	}
}
