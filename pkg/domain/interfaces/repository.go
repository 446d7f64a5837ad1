package interfaces

import (
	"context"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
)

// Database persists repositories, pull requests, commits and users.
// Implementations must return repository.ErrNotFound for missing records and
// repository.ErrAlreadyExists for unique key violations on create.
type Database interface {
	// NextID atomically increments and returns the named counter. The first
	// value is 1.
	NextID(ctx context.Context, name types.SequenceName) (int64, error)

	// Repository operations
	CreateRepository(ctx context.Context, repo *model.Repository) error
	GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error)
	GetRepositoryByGitID(ctx context.Context, gitRepoID types.GitHubRepoID) (*model.Repository, error)
	GetRepositoryByName(ctx context.Context, owner, name string) (*model.Repository, error)
	ListRepositories(ctx context.Context) ([]*model.Repository, error)

	// Pull request operations
	UpsertPullRequest(ctx context.Context, pr *model.PullRequest) error
	GetPullRequest(ctx context.Context, id types.PullRequestID) (*model.PullRequest, error)
	ListPullRequests(ctx context.Context, repoID types.RepoID) ([]*model.PullRequest, error)

	// Commit operations. UpsertCommit merges commit into the stored record by
	// model.Commit.Merge rules and returns the stored result.
	UpsertCommit(ctx context.Context, commit *model.Commit) (*model.Commit, error)
	GetCommit(ctx context.Context, sha types.CommitSHA) (*model.Commit, error)
	ListCommitsByRepository(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error)
	ListCommitsByPullRequest(ctx context.Context, prID types.PullRequestID) ([]*model.Commit, error)

	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, id types.UserID, token string) error
	// SwapRefreshToken replaces the stored refresh token only if it equals
	// expected. Otherwise it returns repository.ErrStaleValue.
	SwapRefreshToken(ctx context.Context, id types.UserID, expected, next string) error
}
