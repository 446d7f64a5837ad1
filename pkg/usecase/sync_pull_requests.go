package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// SyncPullRequests backfills all pull requests of a known repository and the
// commits of each one. Pull requests are processed one by one; the first
// failure aborts the sync and pull requests stored before it are kept.
func (x *UseCase) SyncPullRequests(ctx context.Context, owner, repoName string) ([]*model.PullRequest, error) {
	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	db := x.clients.Database()

	repo, err := db.GetRepositoryByName(ctx, owner, repoName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrRepositoryNotFound, err), "repository is not registered",
				goerr.V("owner", owner),
				goerr.V("repo", repoName),
			)
		}
		return nil, persistenceError(err, "failed to get repository", goerr.V("owner", owner), goerr.V("repo", repoName))
	}

	logger := logging.From(ctx).With(
		slog.String("owner", owner),
		slog.String("repo", repoName),
		slog.Int64("repo_id", int64(repo.ID)),
	)

	ghPRs, err := gh.ListPullRequests(ctx, owner, repoName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests")
	}
	logger.Info("Syncing pull requests", slog.Int("count", len(ghPRs)))

	prs := make([]*model.PullRequest, 0, len(ghPRs))
	for _, ghPR := range ghPRs {
		pr := ghPR.ToPullRequest(repo.ID)
		if err := x.syncPullRequest(ctx, owner, repoName, pr); err != nil {
			logger.Warn("Aborted pull request sync",
				slog.Int("number", pr.Number),
				slog.Int("synced", len(prs)),
			)
			return nil, err
		}
		prs = append(prs, pr)
	}

	logger.Info("Synced pull requests", slog.Int("count", len(prs)))
	return prs, nil
}

func (x *UseCase) syncPullRequest(ctx context.Context, owner, repoName string, pr *model.PullRequest) error {
	db := x.clients.Database()

	if err := db.UpsertPullRequest(ctx, pr); err != nil {
		return persistenceError(err, "failed to upsert pull request",
			goerr.V("pr_id", pr.ID),
			goerr.V("number", pr.Number),
		)
	}

	ghCommits, err := x.clients.GitHub().ListPullRequestCommits(ctx, owner, repoName, pr.Number)
	if err != nil {
		return goerr.Wrap(err, "failed to list pull request commits", goerr.V("number", pr.Number))
	}

	now := logging.CtxTime(ctx).UTC()
	for _, c := range ghCommits {
		if _, err := db.UpsertCommit(ctx, c.ToCommit(pr.RepoID, pr, now)); err != nil {
			return persistenceError(err, "failed to upsert commit",
				goerr.V("sha", c.SHA),
				goerr.V("pr_id", pr.ID),
			)
		}
	}

	return nil
}
