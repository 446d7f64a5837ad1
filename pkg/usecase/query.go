package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *UseCase) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	repos, err := x.clients.Database().ListRepositories(ctx)
	if err != nil {
		return nil, persistenceError(err, "failed to list repositories")
	}
	return repos, nil
}

func (x *UseCase) ListRepositoryCommits(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error) {
	db := x.clients.Database()

	if _, err := db.GetRepository(ctx, repoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrRepositoryNotFound, err), "repository not found",
				goerr.V("repo_id", repoID))
		}
		return nil, persistenceError(err, "failed to get repository", goerr.V("repo_id", repoID))
	}

	commits, err := db.ListCommitsByRepository(ctx, repoID)
	if err != nil {
		return nil, persistenceError(err, "failed to list commits", goerr.V("repo_id", repoID))
	}
	return commits, nil
}

func (x *UseCase) GetPullRequestWithCommits(ctx context.Context, prID types.PullRequestID) (*model.PullRequestWithCommits, error) {
	db := x.clients.Database()

	pr, err := db.GetPullRequest(ctx, prID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrPullRequestNotFound, err), "pull request not found",
				goerr.V("pr_id", prID))
		}
		return nil, persistenceError(err, "failed to get pull request", goerr.V("pr_id", prID))
	}

	commits, err := db.ListCommitsByPullRequest(ctx, prID)
	if err != nil {
		return nil, persistenceError(err, "failed to list commits", goerr.V("pr_id", prID))
	}
	if commits == nil {
		commits = []*model.Commit{}
	}

	return &model.PullRequestWithCommits{PullRequest: *pr, Commits: commits}, nil
}
