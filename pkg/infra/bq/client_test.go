package bq_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra/bq"
	"github.com/m-mizutani/gittales/pkg/utils/safe"
	"github.com/m-mizutani/gittales/pkg/utils/testutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newRecord(sha string, now time.Time) *model.CommitRecord {
	return &model.CommitRecord{
		SHA:         sha,
		RepoID:      1,
		RepoName:    "foo",
		Branch:      "main",
		Message:     "fix",
		Author:      "blue",
		URL:         "https://github.com/o/foo/commit/" + sha,
		Added:       []string{"a.go"},
		Modified:    []string{"b.go"},
		CommittedAt: now,
		ExportedAt:  now,
	}
}

func TestClient(t *testing.T) {
	env := testutil.EnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID", "TEST_BIGQUERY_DATASET_ID")
	projectID, datasetID := env[0], env[1]

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("commit_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)
	defer safe.Close(client)

	schema := gt.R1(bqs.Infer(model.CommitRecord{})).NoError(t)

	t.Run("Create table at first", func(t *testing.T) {
		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.V(t, md).Equal(nil)

		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))
	})

	t.Run("Insert records", func(t *testing.T) {
		now := time.Now().UTC()
		rows := []any{
			newRecord("abc123", now).Raw(),
			newRecord("def456", now).Raw(),
		}
		gt.NoError(t, client.Insert(ctx, schema, rows))
	})

	t.Run("Insert nothing", func(t *testing.T) {
		gt.NoError(t, client.Insert(ctx, schema, nil))
	})
}

func TestImpersonation(t *testing.T) {
	env := testutil.EnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID", "TEST_BIGQUERY_DATASET_ID", "TEST_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT")
	projectID, datasetID, serviceAccount := env[0], env[1], env[2]

	ctx := context.Background()

	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: serviceAccount,
		Scopes: []string{
			"https://www.googleapis.com/auth/bigquery",
			"https://www.googleapis.com/auth/cloud-platform",
		},
	})
	gt.NoError(t, err)

	tblName := types.BQTableID(time.Now().Format("impersonation_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName, option.WithTokenSource(ts))
	gt.NoError(t, err)
	defer safe.Close(client)

	schema := gt.R1(bqs.Infer(model.CommitRecord{})).NoError(t)
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	gt.NoError(t, client.Insert(ctx, schema, []any{newRecord("abc123", time.Now().UTC()).Raw()}))
}

func TestProtoFieldJSONName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "keeps valid names",
			input: "committed_at",
			want:  "committed_at",
		},
		{
			name:  "renames invalid names",
			input: "ruby-advisory-db",
			want:  "col_cnVieS1hZHZpc29yeS1kYg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gt.V(t, bq.ProtoFieldJSONName(tc.input)).Equal(tc.want)
		})
	}
}

func TestSanitizeProtoJSON(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"labels":{"ruby-advisory-db":3,"nvd":2},"added":["a.go"]}`)
	sanitized := gt.R1(bq.SanitizeProtoJSON(raw)).NoError(t)

	dec := json.NewDecoder(bytes.NewReader(sanitized))
	dec.UseNumber()
	payload := map[string]any{}
	gt.NoError(t, dec.Decode(&payload))

	labels, ok := payload["labels"].(map[string]any)
	gt.True(t, ok)

	_, renamed := labels[bq.ProtoFieldJSONName("ruby-advisory-db")]
	gt.True(t, renamed)
	_, original := labels["ruby-advisory-db"]
	gt.False(t, original)
	_, kept := labels["nvd"]
	gt.True(t, kept)
}

func TestIsSchemaMismatchError(t *testing.T) {
	mismatch := "Input schema has more fields than BigQuery schema, extra fields: 'field1'"

	t.Run("detects gRPC InvalidArgument with schema mismatch message", func(t *testing.T) {
		gt.True(t, bq.IsSchemaMismatchError(status.Error(codes.InvalidArgument, mismatch)))
	})

	t.Run("detects wrapped error", func(t *testing.T) {
		err := goerr.Wrap(goerr.Wrap(status.Error(codes.InvalidArgument, mismatch), "level 1"), "level 2")
		gt.True(t, bq.IsSchemaMismatchError(err))
	})

	t.Run("ignores other InvalidArgument", func(t *testing.T) {
		gt.False(t, bq.IsSchemaMismatchError(status.Error(codes.InvalidArgument, "Invalid request parameters")))
	})

	t.Run("ignores other codes", func(t *testing.T) {
		gt.False(t, bq.IsSchemaMismatchError(status.Error(codes.PermissionDenied, mismatch)))
	})

	t.Run("ignores non-gRPC error", func(t *testing.T) {
		gt.False(t, bq.IsSchemaMismatchError(errors.New("some other error")))
	})
}
