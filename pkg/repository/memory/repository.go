package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

func (x *database) NextID(ctx context.Context, name types.SequenceName) (int64, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.counters[name]++
	return x.counters[name], nil
}

func (x *database) CreateRepository(ctx context.Context, repo *model.Repository) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, exists := x.reposByGitID[repo.GitRepoID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "repository already exists",
			goerr.V("git_repo_id", repo.GitRepoID),
		)
	}
	if _, exists := x.repos[repo.ID]; exists {
		return goerr.Wrap(repository.ErrAlreadyExists, "repository ID is already used",
			goerr.V("repo_id", repo.ID),
		)
	}

	x.repos[repo.ID] = copyRepository(repo)
	x.reposByGitID[repo.GitRepoID] = repo.ID
	return nil
}

func (x *database) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	repo, ok := x.repos[id]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("repo_id", id))
	}
	return copyRepository(repo), nil
}

func (x *database) GetRepositoryByGitID(ctx context.Context, gitRepoID types.GitHubRepoID) (*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	id, ok := x.reposByGitID[gitRepoID]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("git_repo_id", gitRepoID))
	}
	return copyRepository(x.repos[id]), nil
}

func (x *database) GetRepositoryByName(ctx context.Context, owner, name string) (*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	for _, repo := range x.repos {
		if strings.EqualFold(repo.OwnerLogin, owner) && strings.EqualFold(repo.Name, name) {
			return copyRepository(repo), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
		goerr.V("owner", owner),
		goerr.V("name", name),
	)
}

func (x *database) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	repos := make([]*model.Repository, 0, len(x.repos))
	for _, repo := range x.repos {
		repos = append(repos, copyRepository(repo))
	}
	sort.Slice(repos, func(i, j int) bool { return repos[i].ID < repos[j].ID })

	return repos, nil
}
