package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PushInput is a verified push webhook payload
type PushInput struct {
	// DeliveryID is X-GitHub-Delivery header value. Empty if not provided.
	DeliveryID string
	Repository PushRepository
	Sender     PushSender
	Compare    string
	Ref        string
	Commits    []*PushCommit
}

type PushRepository struct {
	GitRepoID   types.GitHubRepoID
	Name        string
	Link        string
	Description string
	Language    string
	OwnerID     int64
	OwnerLogin  string
	OwnerLink   string
}

type PushSender struct {
	Login     string
	AvatarURL string
}

type PushCommit struct {
	SHA       types.CommitSHA
	TreeID    string
	Message   string
	URL       string
	Author    string
	Timestamp time.Time
	Added     []string
	Removed   []string
	Modified  []string
}

func (x *PushInput) Validate() error {
	if x.Repository.GitRepoID == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "repository id is missing")
	}
	if x.Repository.Name == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository name is missing",
			goerr.V("git_repo_id", x.Repository.GitRepoID))
	}
	for i, c := range x.Commits {
		if c == nil || c.SHA == "" {
			return goerr.Wrap(types.ErrValidationFailed, "commit id is missing", goerr.V("index", i))
		}
	}
	return nil
}

// Branch returns the last path segment of Ref, e.g. "main" for "refs/heads/main".
func (x *PushInput) Branch() string {
	if i := strings.LastIndex(x.Ref, "/"); i >= 0 {
		return x.Ref[i+1:]
	}
	return x.Ref
}

func (x *PushRepository) ToRepository(id types.RepoID, now time.Time) *Repository {
	return &Repository{
		ID:          id,
		GitRepoID:   x.GitRepoID,
		Name:        x.Name,
		Link:        x.Link,
		Description: x.Description,
		Language:    x.Language,
		OwnerID:     x.OwnerID,
		OwnerLogin:  x.OwnerLogin,
		OwnerLink:   x.OwnerLink,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (x *PushInput) ToCommit(c *PushCommit, repoID types.RepoID, now time.Time) *Commit {
	return &Commit{
		SHA:          c.SHA,
		RepoID:       &repoID,
		Message:      c.Message,
		Author:       c.Author,
		Branch:       x.Branch(),
		TreeID:       c.TreeID,
		URL:          c.URL,
		Compare:      x.Compare,
		SenderName:   x.Sender.Login,
		SenderAvatar: x.Sender.AvatarURL,
		Added:        nonNil(c.Added),
		Removed:      nonNil(c.Removed),
		Modified:     nonNil(c.Modified),
		CommittedAt:  c.Timestamp,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// A push always reports file lists, so an empty list is stored as empty rather
// than "unknown".
func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
