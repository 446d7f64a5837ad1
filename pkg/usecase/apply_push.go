package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/gittales/pkg/utils/errutil"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ApplyPush persists the repository and commits of a verified push event and
// returns the stored commits in payload order. Re-applying the same payload
// leaves the store unchanged. A repeated delivery ID returns the stored
// commits without writing.
func (x *UseCase) ApplyPush(ctx context.Context, input *model.PushInput) ([]*model.Commit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(
		slog.String("delivery_id", input.DeliveryID),
		slog.Int64("git_repo_id", int64(input.Repository.GitRepoID)),
	)

	state := x.claimDelivery(ctx, input.DeliveryID)
	if state == deliveryDuplicate {
		commits, found, err := x.storedCommits(ctx, input)
		if err != nil {
			return nil, err
		}
		if found {
			logger.Info("Duplicate delivery, returning stored commits", slog.Int("commits", len(commits)))
			return commits, nil
		}
		logger.Warn("Duplicate delivery without stored commits, processing again")
	}

	repo, commits, err := x.applyPush(ctx, input)
	if err != nil {
		if state == deliveryClaimed {
			if relErr := x.clients.DeliveryGuard().Release(ctx, input.DeliveryID); relErr != nil {
				logger.Warn("Failed to release delivery claim", slog.Any("error", relErr))
			}
		}
		return nil, err
	}

	logger.Info("Applied push",
		slog.Int64("repo_id", int64(repo.ID)),
		slog.String("branch", input.Branch()),
		slog.Int("commits", len(commits)),
	)

	x.afterPush(ctx, repo, input.Branch(), commits)

	return commits, nil
}

type deliveryState int

const (
	// deliveryUntracked means no delivery ID or no guard is available
	deliveryUntracked deliveryState = iota
	deliveryClaimed
	deliveryDuplicate
)

func (x *UseCase) claimDelivery(ctx context.Context, deliveryID string) deliveryState {
	guard := x.clients.DeliveryGuard()
	if deliveryID == "" || guard == nil {
		return deliveryUntracked
	}

	claimed, err := guard.Claim(ctx, deliveryID)
	if err != nil {
		// The push itself is idempotent, so it is processed without dedup
		logging.From(ctx).Warn("Failed to claim delivery",
			slog.String("delivery_id", deliveryID),
			slog.Any("error", err),
		)
		return deliveryUntracked
	}
	if !claimed {
		return deliveryDuplicate
	}
	return deliveryClaimed
}

// storedCommits looks up every commit of input. found is false if any of
// them is missing.
func (x *UseCase) storedCommits(ctx context.Context, input *model.PushInput) ([]*model.Commit, bool, error) {
	db := x.clients.Database()

	commits := make([]*model.Commit, 0, len(input.Commits))
	for _, c := range input.Commits {
		stored, err := db.GetCommit(ctx, c.SHA)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, false, nil
			}
			return nil, false, persistenceError(err, "failed to get commit", goerr.V("sha", c.SHA))
		}
		commits = append(commits, stored)
	}

	return commits, true, nil
}

func (x *UseCase) applyPush(ctx context.Context, input *model.PushInput) (*model.Repository, []*model.Commit, error) {
	now := logging.CtxTime(ctx).UTC()
	db := x.clients.Database()

	repo, err := x.ensureRepository(ctx, &input.Repository)
	if err != nil {
		return nil, nil, err
	}

	commits := make([]*model.Commit, 0, len(input.Commits))
	for _, c := range input.Commits {
		stored, err := db.UpsertCommit(ctx, input.ToCommit(c, repo.ID, now))
		if err != nil {
			return nil, nil, persistenceError(err, "failed to upsert commit",
				goerr.V("sha", c.SHA),
				goerr.V("repo_id", repo.ID),
			)
		}
		commits = append(commits, stored)
	}

	return repo, commits, nil
}

// ensureRepository returns the repository of the push, creating it with a
// new sequential ID on first sight. When a concurrent push creates the same
// repository first, the winner's record is read back once.
func (x *UseCase) ensureRepository(ctx context.Context, in *model.PushRepository) (*model.Repository, error) {
	db := x.clients.Database()

	repo, err := db.GetRepositoryByGitID(ctx, in.GitRepoID)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, persistenceError(err, "failed to get repository", goerr.V("git_repo_id", in.GitRepoID))
	}

	// Losing the insert race below leaves this ID unused. IDs stay unique but
	// may have gaps.
	id, err := db.NextID(ctx, types.SequenceRepository)
	if err != nil {
		return nil, persistenceError(err, "failed to allocate repository ID")
	}

	newRepo := in.ToRepository(types.RepoID(id), logging.CtxTime(ctx).UTC())
	if err := db.CreateRepository(ctx, newRepo); err != nil {
		if !errors.Is(err, repository.ErrAlreadyExists) {
			return nil, persistenceError(err, "failed to create repository", goerr.V("git_repo_id", in.GitRepoID))
		}

		repo, err := db.GetRepositoryByGitID(ctx, in.GitRepoID)
		if err != nil {
			return nil, persistenceError(err, "failed to re-read repository", goerr.V("git_repo_id", in.GitRepoID))
		}
		return repo, nil
	}

	logging.From(ctx).Info("Created repository",
		slog.Int64("repo_id", int64(newRepo.ID)),
		slog.Int64("git_repo_id", int64(newRepo.GitRepoID)),
		slog.String("name", newRepo.Name),
	)

	return newRepo, nil
}

// afterPush notifies optional sinks. Their failures are reported but never
// fail the push.
func (x *UseCase) afterPush(ctx context.Context, repo *model.Repository, branch string, commits []*model.Commit) {
	if len(commits) == 0 {
		return
	}
	now := logging.CtxTime(ctx).UTC()

	if pub := x.clients.EventPublisher(); pub != nil {
		ev := model.NewCommitsPushedEvent(repo, branch, commits, now)
		if err := pub.PublishCommitsPushed(ctx, ev); err != nil {
			errutil.HandleError(ctx, "failed to publish commits pushed event", err)
		}
	}

	if x.clients.BigQuery() != nil {
		records := make([]*model.CommitRecord, 0, len(commits))
		for _, c := range commits {
			records = append(records, model.NewCommitRecord(repo, c, now))
		}
		if err := x.ExportCommits(ctx, records); err != nil {
			errutil.HandleError(ctx, "failed to export commits to BigQuery", err)
		}
	}
}
