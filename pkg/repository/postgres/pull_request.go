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

const pullRequestColumns = `pr_id, number, repo_id, title, state, author, base_branch, head_branch,
	commits_link, created_at, updated_at, merged_at`

func scanPullRequest(row rowScanner) (*model.PullRequest, error) {
	var (
		pr       model.PullRequest
		mergedAt sql.NullTime
	)
	if err := row.Scan(
		&pr.ID,
		&pr.Number,
		&pr.RepoID,
		&pr.Title,
		&pr.State,
		&pr.Author,
		&pr.BaseBranch,
		&pr.HeadBranch,
		&pr.CommitsLink,
		&pr.CreatedAt,
		&pr.UpdatedAt,
		&mergedAt,
	); err != nil {
		return nil, err
	}
	if mergedAt.Valid {
		pr.MergedAt = &mergedAt.Time
	}
	return &pr, nil
}

func (x *Client) UpsertPullRequest(ctx context.Context, pr *model.PullRequest) error {
	const query = `INSERT INTO pull_requests (` + pullRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (pr_id) DO UPDATE SET
			number = EXCLUDED.number,
			repo_id = EXCLUDED.repo_id,
			title = EXCLUDED.title,
			state = EXCLUDED.state,
			author = EXCLUDED.author,
			base_branch = EXCLUDED.base_branch,
			head_branch = EXCLUDED.head_branch,
			commits_link = EXCLUDED.commits_link,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at,
			merged_at = EXCLUDED.merged_at`

	if _, err := x.db.ExecContext(ctx, query,
		pr.ID,
		pr.Number,
		pr.RepoID,
		pr.Title,
		pr.State,
		pr.Author,
		pr.BaseBranch,
		pr.HeadBranch,
		pr.CommitsLink,
		pr.CreatedAt,
		pr.UpdatedAt,
		pr.MergedAt,
	); err != nil {
		return goerr.Wrap(err, "failed to upsert pull request", goerr.V("pr_id", pr.ID))
	}

	return nil
}

func (x *Client) GetPullRequest(ctx context.Context, id types.PullRequestID) (*model.PullRequest, error) {
	query := `SELECT ` + pullRequestColumns + ` FROM pull_requests WHERE pr_id = $1`
	pr, err := scanPullRequest(x.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "pull request not found", goerr.V("pr_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get pull request", goerr.V("pr_id", id))
	}
	return pr, nil
}

func (x *Client) ListPullRequests(ctx context.Context, repoID types.RepoID) ([]*model.PullRequest, error) {
	query := `SELECT ` + pullRequestColumns + ` FROM pull_requests WHERE repo_id = $1 ORDER BY number`
	rows, err := x.db.QueryContext(ctx, query, repoID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests", goerr.V("repo_id", repoID))
	}
	defer safe.Close(rows)

	var prs []*model.PullRequest
	for rows.Next() {
		pr, err := scanPullRequest(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan pull request")
		}
		prs = append(prs, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate pull requests")
	}

	return prs, nil
}
