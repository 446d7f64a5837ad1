package firestore

import (
	"cmp"
	"context"
	"slices"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UpsertCommit reads and merges the stored commit in a transaction so that
// concurrent push and backfill writes for the same SHA do not lose fields.
func (x *Client) UpsertCommit(ctx context.Context, commit *model.Commit) (*model.Commit, error) {
	ref := x.client.Collection(collectionCommit).Doc(string(commit.SHA))

	var stored *model.Commit
	err := x.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) != codes.NotFound {
				return err
			}
			stored = commit
			return tx.Create(ref, stored)
		}

		var current model.Commit
		if err := snap.DataTo(&current); err != nil {
			return err
		}
		stored = current.Merge(commit)
		return tx.Set(ref, stored)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert commit", goerr.V("sha", commit.SHA))
	}

	return stored, nil
}

func (x *Client) GetCommit(ctx context.Context, sha types.CommitSHA) (*model.Commit, error) {
	var commit model.Commit
	if err := getDoc(ctx, x.client.Collection(collectionCommit).Doc(string(sha)), &commit); err != nil {
		return nil, err
	}
	return &commit, nil
}

func (x *Client) ListCommitsByRepository(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error) {
	query := x.client.Collection(collectionCommit).Where("RepoID", "==", int64(repoID))
	commits, err := listDocs[model.Commit](ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("repo_id", repoID))
	}
	sortCommits(commits)
	return commits, nil
}

func (x *Client) ListCommitsByPullRequest(ctx context.Context, prID types.PullRequestID) ([]*model.Commit, error) {
	query := x.client.Collection(collectionCommit).Where("PullRequestID", "==", int64(prID))
	commits, err := listDocs[model.Commit](ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("pr_id", prID))
	}
	sortCommits(commits)
	return commits, nil
}

// Sorting is done in memory to avoid composite indexes
func sortCommits(commits []*model.Commit) {
	slices.SortFunc(commits, func(a, b *model.Commit) int {
		if c := a.CommittedAt.Compare(b.CommittedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.SHA, b.SHA)
	})
}

func sortPullRequests(prs []*model.PullRequest) {
	slices.SortFunc(prs, func(a, b *model.PullRequest) int {
		return cmp.Compare(a.Number, b.Number)
	})
}
