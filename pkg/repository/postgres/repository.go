package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/gittales/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

func (x *Client) NextID(ctx context.Context, name types.SequenceName) (int64, error) {
	const query = `INSERT INTO counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value`

	var value int64
	if err := x.db.QueryRowContext(ctx, query, string(name)).Scan(&value); err != nil {
		return 0, goerr.Wrap(err, "failed to increment counter", goerr.V("name", name))
	}
	return value, nil
}

const repositoryColumns = `repo_id, git_repo_id, repo_name, repo_link, repo_description, repo_language,
	repo_owner_id, repo_owner_name, repo_owner_link, created_at, updated_at`

func scanRepository(row rowScanner) (*model.Repository, error) {
	var repo model.Repository
	if err := row.Scan(
		&repo.ID,
		&repo.GitRepoID,
		&repo.Name,
		&repo.Link,
		&repo.Description,
		&repo.Language,
		&repo.OwnerID,
		&repo.OwnerLogin,
		&repo.OwnerLink,
		&repo.CreatedAt,
		&repo.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (x *Client) CreateRepository(ctx context.Context, repo *model.Repository) error {
	const query = `INSERT INTO repositories (` + repositoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if _, err := x.db.ExecContext(ctx, query,
		repo.ID,
		repo.GitRepoID,
		repo.Name,
		repo.Link,
		repo.Description,
		repo.Language,
		repo.OwnerID,
		repo.OwnerLogin,
		repo.OwnerLink,
		repo.CreatedAt,
		repo.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return goerr.Wrap(repository.ErrAlreadyExists, "repository already exists",
				goerr.V("git_repo_id", repo.GitRepoID),
				goerr.V("cause", err.Error()),
			)
		}
		return goerr.Wrap(err, "failed to insert repository", goerr.V("git_repo_id", repo.GitRepoID))
	}

	return nil
}

func (x *Client) getRepository(ctx context.Context, where string, args ...any) (*model.Repository, error) {
	query := `SELECT ` + repositoryColumns + ` FROM repositories WHERE ` + where
	repo, err := scanRepository(x.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found", goerr.V("args", args))
		}
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("args", args))
	}
	return repo, nil
}

func (x *Client) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	return x.getRepository(ctx, "repo_id = $1", id)
}

func (x *Client) GetRepositoryByGitID(ctx context.Context, gitRepoID types.GitHubRepoID) (*model.Repository, error) {
	return x.getRepository(ctx, "git_repo_id = $1", gitRepoID)
}

func (x *Client) GetRepositoryByName(ctx context.Context, owner, name string) (*model.Repository, error) {
	return x.getRepository(ctx, "lower(repo_owner_name) = lower($1) AND lower(repo_name) = lower($2) ORDER BY repo_id LIMIT 1", owner, name)
}

func (x *Client) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	rows, err := x.db.QueryContext(ctx, `SELECT `+repositoryColumns+` FROM repositories ORDER BY repo_id`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories")
	}
	defer safe.Close(rows)

	var repos []*model.Repository
	for rows.Next() {
		repo, err := scanRepository(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan repository")
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate repositories")
	}

	return repos, nil
}
