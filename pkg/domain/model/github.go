package model

import (
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/types"
)

// GitHubPullRequest is a pull request returned by GitHub REST API
type GitHubPullRequest struct {
	ID         types.PullRequestID
	Number     int
	Title      string
	State      string
	Author     string
	BaseBranch string
	HeadBranch string
	CommitsURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	MergedAt   *time.Time
}

// GitHubCommit is a commit returned by the pull request commits API. File
// changes are not included in the API response.
type GitHubCommit struct {
	SHA         types.CommitSHA
	TreeID      string
	Message     string
	URL         string
	Author      string
	CommittedAt time.Time
}

func (x *GitHubPullRequest) ToPullRequest(repoID types.RepoID) *PullRequest {
	state := types.PullRequestState(x.State)
	if x.MergedAt != nil {
		state = types.PullRequestMerged
	}

	return &PullRequest{
		ID:          x.ID,
		Number:      x.Number,
		RepoID:      repoID,
		Title:       x.Title,
		State:       state,
		Author:      x.Author,
		BaseBranch:  x.BaseBranch,
		HeadBranch:  x.HeadBranch,
		CommitsLink: x.CommitsURL,
		CreatedAt:   x.CreatedAt,
		UpdatedAt:   x.UpdatedAt,
		MergedAt:    x.MergedAt,
	}
}

func (x *GitHubCommit) ToCommit(repoID types.RepoID, pr *PullRequest, now time.Time) *Commit {
	prID := pr.ID
	return &Commit{
		SHA:           x.SHA,
		RepoID:        &repoID,
		PullRequestID: &prID,
		Message:       x.Message,
		Author:        x.Author,
		Branch:        pr.HeadBranch,
		TreeID:        x.TreeID,
		URL:           x.URL,
		CommittedAt:   x.CommittedAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// RepoTarget identifies a repository by owner and name
type RepoTarget struct {
	Owner string
	Name  string
}

func (x RepoTarget) String() string {
	return x.Owner + "/" + x.Name
}
