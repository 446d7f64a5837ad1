package usecase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ExportCommits appends commit records to the BigQuery table, creating the
// table or adding new columns when needed
func (x *UseCase) ExportCommits(ctx context.Context, records []*model.CommitRecord) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return goerr.Wrap(types.ErrInvalidOption, "BigQuery is not configured")
	}
	if len(records) == 0 {
		return nil
	}

	schema, err := createOrUpdateBigQueryTable(ctx, bq)
	if err != nil {
		return err
	}

	rows := make([]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Raw())
	}

	if err := bq.Insert(ctx, schema, rows); err != nil {
		return goerr.Wrap(err, "failed to insert commits to BigQuery", goerr.V("rows", len(rows)))
	}

	logging.From(ctx).Debug("Exported commits to BigQuery", slog.Int("rows", len(rows)))
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery) (bigquery.Schema, error) {
	schema, err := bqs.Infer(model.CommitRecord{})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer commit record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}

// BackfillCommits exports every stored commit of every repository. It returns
// the number of exported rows.
func (x *UseCase) BackfillCommits(ctx context.Context) (int, error) {
	if x.clients.BigQuery() == nil {
		return 0, goerr.Wrap(types.ErrInvalidOption, "BigQuery is not configured")
	}
	db := x.clients.Database()
	now := logging.CtxTime(ctx).UTC()

	repos, err := db.ListRepositories(ctx)
	if err != nil {
		return 0, persistenceError(err, "failed to list repositories")
	}

	var total int
	for _, repo := range repos {
		commits, err := db.ListCommitsByRepository(ctx, repo.ID)
		if err != nil {
			return total, persistenceError(err, "failed to list commits", goerr.V("repo_id", repo.ID))
		}

		records := make([]*model.CommitRecord, 0, len(commits))
		for _, c := range commits {
			records = append(records, model.NewCommitRecord(repo, c, now))
		}
		if err := x.ExportCommits(ctx, records); err != nil {
			return total, goerr.Wrap(err, "failed to export commits", goerr.V("repo_id", repo.ID))
		}
		total += len(records)
	}

	return total, nil
}
