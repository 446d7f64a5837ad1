package firestore

import (
	"context"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func (x *Client) UpsertPullRequest(ctx context.Context, pr *model.PullRequest) error {
	ref := x.client.Collection(collectionPullRequest).Doc(int64DocID(int64(pr.ID)))
	if _, err := ref.Set(ctx, pr); err != nil {
		return goerr.Wrap(err, "failed to upsert pull request", goerr.V("pr_id", pr.ID))
	}
	return nil
}

func (x *Client) GetPullRequest(ctx context.Context, id types.PullRequestID) (*model.PullRequest, error) {
	var pr model.PullRequest
	ref := x.client.Collection(collectionPullRequest).Doc(int64DocID(int64(id)))
	if err := getDoc(ctx, ref, &pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

func (x *Client) ListPullRequests(ctx context.Context, repoID types.RepoID) ([]*model.PullRequest, error) {
	query := x.client.Collection(collectionPullRequest).Where("RepoID", "==", int64(repoID))
	prs, err := listDocs[model.PullRequest](ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests", goerr.V("repo_id", repoID))
	}
	sortPullRequests(prs)
	return prs, nil
}
