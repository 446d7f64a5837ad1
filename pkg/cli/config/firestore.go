package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID, required for firestore backend",
			Category:    "Database",
			Sources:     cli.EnvVars("GITTALES_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Database",
			Sources:     cli.EnvVars("GITTALES_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}

func (x *Firestore) NewClient(ctx context.Context) (*firestore.Client, error) {
	if x.projectID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "firestore-project-id is required for firestore backend")
	}
	return firestore.New(ctx, x.projectID, x.databaseID)
}
