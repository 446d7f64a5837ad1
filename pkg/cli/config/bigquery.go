package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra/bq"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID          types.GoogleProjectID
	datasetID          types.BQDatasetID
	tableID            types.BQTableID
	impersonateAccount string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bq-project-id",
			Usage:       "BigQuery project ID to export commits. Export is disabled if empty",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("GITTALES_BQ_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("GITTALES_BQ_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Value:       "commits",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("GITTALES_BQ_TABLE_ID"),
		},
		&cli.StringFlag{
			Name:        "bq-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery",
			Category:    "BigQuery",
			Destination: &x.impersonateAccount,
			Sources:     cli.EnvVars("GITTALES_BQ_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if x.datasetID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bq-dataset-id is required with bq-project-id")
	}

	var options []option.ClientOption
	if x.impersonateAccount != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateAccount,
			Scopes: []string{
				"https://www.googleapis.com/auth/bigquery",
				"https://www.googleapis.com/auth/cloud-platform",
			},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create token source for impersonate",
				goerr.V("account", x.impersonateAccount))
		}
		options = append(options, option.WithTokenSource(ts))
	}

	return bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
		slog.String("impersonateAccount", x.impersonateAccount),
	)
}
