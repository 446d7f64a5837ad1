package model

import (
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/types"
)

type PullRequest struct {
	ID          types.PullRequestID    `json:"pr_id"`
	Number      int                    `json:"number"`
	RepoID      types.RepoID           `json:"repo_id"`
	Title       string                 `json:"title"`
	State       types.PullRequestState `json:"state"`
	Author      string                 `json:"author"`
	BaseBranch  string                 `json:"base_branch"`
	HeadBranch  string                 `json:"head_branch"`
	CommitsLink string                 `json:"commits_link"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	MergedAt    *time.Time             `json:"merged_at"`
}

type PullRequestWithCommits struct {
	PullRequest
	Commits []*Commit `json:"commits"`
}
