package memory

import (
	"sync"

	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
)

type database struct {
	mu sync.RWMutex

	counters     map[types.SequenceName]int64
	repos        map[types.RepoID]*model.Repository
	reposByGitID map[types.GitHubRepoID]types.RepoID
	pullRequests map[types.PullRequestID]*model.PullRequest
	commits      map[types.CommitSHA]*model.Commit
	users        map[types.UserID]*model.User
	usersByEmail map[string]types.UserID
}

var _ interfaces.Database = (*database)(nil)

// New creates a new in-memory database. Data is lost when the process exits.
func New() interfaces.Database {
	return &database{
		counters:     make(map[types.SequenceName]int64),
		repos:        make(map[types.RepoID]*model.Repository),
		reposByGitID: make(map[types.GitHubRepoID]types.RepoID),
		pullRequests: make(map[types.PullRequestID]*model.PullRequest),
		commits:      make(map[types.CommitSHA]*model.Commit),
		users:        make(map[types.UserID]*model.User),
		usersByEmail: make(map[string]types.UserID),
	}
}

func copyRepository(repo *model.Repository) *model.Repository {
	cpy := *repo
	return &cpy
}

func copyPullRequest(pr *model.PullRequest) *model.PullRequest {
	cpy := *pr
	if pr.MergedAt != nil {
		t := *pr.MergedAt
		cpy.MergedAt = &t
	}
	return &cpy
}

func copyCommit(commit *model.Commit) *model.Commit {
	cpy := *commit
	if commit.RepoID != nil {
		v := *commit.RepoID
		cpy.RepoID = &v
	}
	if commit.PullRequestID != nil {
		v := *commit.PullRequestID
		cpy.PullRequestID = &v
	}
	if commit.Haiku != nil {
		v := *commit.Haiku
		cpy.Haiku = &v
	}
	cpy.Added = copyStrings(commit.Added)
	cpy.Removed = copyStrings(commit.Removed)
	cpy.Modified = copyStrings(commit.Modified)
	return &cpy
}

func copyStrings(v []string) []string {
	if v == nil {
		return nil
	}
	cpy := make([]string, len(v))
	copy(cpy, v)
	return cpy
}

func copyUser(user *model.User) *model.User {
	cpy := *user
	return &cpy
}
