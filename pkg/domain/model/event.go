package model

import (
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/types"
)

// CommitsPushedEvent is published after commits of a push are persisted.
// Messages keep the order of the push payload.
type CommitsPushedEvent struct {
	RepoID    types.RepoID       `json:"repo_id"`
	GitRepoID types.GitHubRepoID `json:"git_repo_id"`
	RepoName  string             `json:"repo_name"`
	Branch    string             `json:"branch"`
	SHAs      []types.CommitSHA  `json:"shas"`
	Messages  []string           `json:"messages"`
	PushedAt  time.Time          `json:"pushed_at"`
}

func NewCommitsPushedEvent(repo *Repository, branch string, commits []*Commit, now time.Time) *CommitsPushedEvent {
	ev := &CommitsPushedEvent{
		RepoID:    repo.ID,
		GitRepoID: repo.GitRepoID,
		RepoName:  repo.Name,
		Branch:    branch,
		SHAs:      make([]types.CommitSHA, 0, len(commits)),
		Messages:  make([]string, 0, len(commits)),
		PushedAt:  now,
	}
	for _, c := range commits {
		ev.SHAs = append(ev.SHAs, c.SHA)
		ev.Messages = append(ev.Messages, c.Message)
	}
	return ev
}
