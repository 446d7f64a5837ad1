package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub TokenSigner PasswordHasher DeliveryGuard EventPublisher BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
)

// GitHub is a read-only client of GitHub REST API. Errors are classified as
// types.ErrUpstreamFailure.
type GitHub interface {
	ListPullRequests(ctx context.Context, owner, repo string) ([]*model.GitHubPullRequest, error)
	ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]*model.GitHubCommit, error)
}

type TokenSigner interface {
	Sign(ctx context.Context, kind types.TokenKind, payload model.TokenPayload) (string, error)
	Verify(ctx context.Context, kind types.TokenKind, token string) (*model.TokenPayload, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, digest string) bool
}

// DeliveryGuard remembers webhook delivery IDs that have been processed
type DeliveryGuard interface {
	// Claim returns true if id has not been claimed yet
	Claim(ctx context.Context, id string) (bool, error)
	Release(ctx context.Context, id string) error
}

type EventPublisher interface {
	PublishCommitsPushed(ctx context.Context, event *model.CommitsPushedEvent) error
}

// BigQuery writes rows into a single table. GetMetadata returns nil when the
// table does not exist.
type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, rows []any) error
	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
