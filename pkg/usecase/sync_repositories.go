package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

const defaultSyncConcurrency = 4

// SyncRepositories runs SyncPullRequests for each target with at most
// concurrency repositories in flight. Every target is attempted and all
// failures are returned joined, so errors.Is works on each of them.
func (x *UseCase) SyncRepositories(ctx context.Context, targets []model.RepoTarget, concurrency int) error {
	if concurrency <= 0 {
		concurrency = defaultSyncConcurrency
	}
	logger := logging.From(ctx)

	var eg errgroup.Group
	eg.SetLimit(concurrency)

	var (
		mu       sync.Mutex
		failures []error
	)
	for _, target := range targets {
		eg.Go(func() error {
			prs, err := x.SyncPullRequests(ctx, target.Owner, target.Name)
			if err != nil {
				logger.Warn("Failed to sync repository",
					slog.String("repo", target.String()),
					slog.Any("error", err),
				)
				err = goerr.Wrap(err, "failed to sync repository", goerr.V("repo", target.String()))

				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
				return err
			}

			logger.Info("Synced repository",
				slog.String("repo", target.String()),
				slog.Int("pull_requests", len(prs)),
			)
			return nil
		})
	}

	// A plain Group does not cancel the others on error, so Wait returns after
	// every target has been attempted.
	if err := eg.Wait(); err != nil {
		return goerr.Wrap(errors.Join(failures...), "some repositories failed to sync",
			goerr.V("failure_count", len(failures)),
			goerr.V("total", len(targets)),
		)
	}
	return nil
}
