package cli

import (
	"context"

	"github.com/m-mizutani/gittales/pkg/cli/config"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func migrateCommand() *cli.Command {
	var database config.Database

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply PostgreSQL schema migrations",
		Flags: database.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting migration", "Database", &database)
			if err := database.Migrate(ctx); err != nil {
				return err
			}
			logging.Default().Info("migration completed")
			return nil
		},
	}
}
