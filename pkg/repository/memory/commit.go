package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *database) UpsertCommit(ctx context.Context, commit *model.Commit) (*model.Commit, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	stored := copyCommit(commit)
	if current, ok := x.commits[commit.SHA]; ok {
		stored = current.Merge(commit)
	}
	x.commits[commit.SHA] = stored

	return copyCommit(stored), nil
}

func (x *database) GetCommit(ctx context.Context, sha types.CommitSHA) (*model.Commit, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	commit, ok := x.commits[sha]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "commit not found", goerr.V("sha", sha))
	}
	return copyCommit(commit), nil
}

func (x *database) ListCommitsByRepository(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error) {
	return x.listCommits(func(c *model.Commit) bool {
		return c.RepoID != nil && *c.RepoID == repoID
	}), nil
}

func (x *database) ListCommitsByPullRequest(ctx context.Context, prID types.PullRequestID) ([]*model.Commit, error) {
	return x.listCommits(func(c *model.Commit) bool {
		return c.PullRequestID != nil && *c.PullRequestID == prID
	}), nil
}

func (x *database) listCommits(match func(c *model.Commit) bool) []*model.Commit {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var commits []*model.Commit
	for _, c := range x.commits {
		if match(c) {
			commits = append(commits, copyCommit(c))
		}
	}
	sortCommits(commits)
	return commits
}

func sortCommits(commits []*model.Commit) {
	sort.Slice(commits, func(i, j int) bool {
		if !commits[i].CommittedAt.Equal(commits[j].CommittedAt) {
			return commits[i].CommittedAt.Before(commits[j].CommittedAt)
		}
		return commits[i].SHA < commits[j].SHA
	})
}
