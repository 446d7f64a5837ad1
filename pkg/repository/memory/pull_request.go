package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *database) UpsertPullRequest(ctx context.Context, pr *model.PullRequest) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.pullRequests[pr.ID] = copyPullRequest(pr)
	return nil
}

func (x *database) GetPullRequest(ctx context.Context, id types.PullRequestID) (*model.PullRequest, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	pr, ok := x.pullRequests[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "pull request not found", goerr.V("pr_id", id))
	}
	return copyPullRequest(pr), nil
}

func (x *database) ListPullRequests(ctx context.Context, repoID types.RepoID) ([]*model.PullRequest, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var prs []*model.PullRequest
	for _, pr := range x.pullRequests {
		if pr.RepoID == repoID {
			prs = append(prs, copyPullRequest(pr))
		}
	}
	sort.Slice(prs, func(i, j int) bool { return prs[i].Number < prs[j].Number })

	return prs, nil
}
