package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/gittales/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const commitColumns = `commit_id, repo_id, pr_id, commit_message, author, branch, git_commit_tree_id,
	commit_url, compare, commit_sender_name, commit_sender_avatar, commit_added_files,
	commit_removed_files, commit_modified_files, commit_haiku, committed_at, created_at, updated_at`

func scanCommit(row rowScanner) (*model.Commit, error) {
	var (
		commit      model.Commit
		repoID      sql.NullInt64
		prID        sql.NullInt64
		haiku       sql.NullString
		committedAt sql.NullTime
	)
	if err := row.Scan(
		&commit.SHA,
		&repoID,
		&prID,
		&commit.Message,
		&commit.Author,
		&commit.Branch,
		&commit.TreeID,
		&commit.URL,
		&commit.Compare,
		&commit.SenderName,
		&commit.SenderAvatar,
		pq.Array(&commit.Added),
		pq.Array(&commit.Removed),
		pq.Array(&commit.Modified),
		&haiku,
		&committedAt,
		&commit.CreatedAt,
		&commit.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if repoID.Valid {
		v := types.RepoID(repoID.Int64)
		commit.RepoID = &v
	}
	if prID.Valid {
		v := types.PullRequestID(prID.Int64)
		commit.PullRequestID = &v
	}
	if haiku.Valid {
		commit.Haiku = &haiku.String
	}
	if committedAt.Valid {
		commit.CommittedAt = committedAt.Time
	}

	return &commit, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// UpsertCommit follows model.Commit.Merge: empty strings, NULL arrays and NULL
// references in the incoming row keep the stored values. commit_haiku and
// created_at are written on insert only. updated_at moves only when the merged
// row differs from the stored one.
func (x *Client) UpsertCommit(ctx context.Context, commit *model.Commit) (*model.Commit, error) {
	const query = `INSERT INTO commits (` + commitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (commit_id) DO UPDATE SET
			repo_id = COALESCE(EXCLUDED.repo_id, commits.repo_id),
			pr_id = COALESCE(EXCLUDED.pr_id, commits.pr_id),
			commit_message = COALESCE(NULLIF(EXCLUDED.commit_message, ''), commits.commit_message),
			author = COALESCE(NULLIF(EXCLUDED.author, ''), commits.author),
			branch = COALESCE(NULLIF(EXCLUDED.branch, ''), commits.branch),
			git_commit_tree_id = COALESCE(NULLIF(EXCLUDED.git_commit_tree_id, ''), commits.git_commit_tree_id),
			commit_url = COALESCE(NULLIF(EXCLUDED.commit_url, ''), commits.commit_url),
			compare = COALESCE(NULLIF(EXCLUDED.compare, ''), commits.compare),
			commit_sender_name = COALESCE(NULLIF(EXCLUDED.commit_sender_name, ''), commits.commit_sender_name),
			commit_sender_avatar = COALESCE(NULLIF(EXCLUDED.commit_sender_avatar, ''), commits.commit_sender_avatar),
			commit_added_files = COALESCE(EXCLUDED.commit_added_files, commits.commit_added_files),
			commit_removed_files = COALESCE(EXCLUDED.commit_removed_files, commits.commit_removed_files),
			commit_modified_files = COALESCE(EXCLUDED.commit_modified_files, commits.commit_modified_files),
			committed_at = COALESCE(EXCLUDED.committed_at, commits.committed_at),
			updated_at = CASE
				WHEN (
					COALESCE(EXCLUDED.repo_id, commits.repo_id),
					COALESCE(EXCLUDED.pr_id, commits.pr_id),
					COALESCE(NULLIF(EXCLUDED.commit_message, ''), commits.commit_message),
					COALESCE(NULLIF(EXCLUDED.author, ''), commits.author),
					COALESCE(NULLIF(EXCLUDED.branch, ''), commits.branch),
					COALESCE(NULLIF(EXCLUDED.git_commit_tree_id, ''), commits.git_commit_tree_id),
					COALESCE(NULLIF(EXCLUDED.commit_url, ''), commits.commit_url),
					COALESCE(NULLIF(EXCLUDED.compare, ''), commits.compare),
					COALESCE(NULLIF(EXCLUDED.commit_sender_name, ''), commits.commit_sender_name),
					COALESCE(NULLIF(EXCLUDED.commit_sender_avatar, ''), commits.commit_sender_avatar),
					COALESCE(EXCLUDED.commit_added_files, commits.commit_added_files),
					COALESCE(EXCLUDED.commit_removed_files, commits.commit_removed_files),
					COALESCE(EXCLUDED.commit_modified_files, commits.commit_modified_files),
					COALESCE(EXCLUDED.committed_at, commits.committed_at)
				) IS DISTINCT FROM (
					commits.repo_id, commits.pr_id, commits.commit_message, commits.author,
					commits.branch, commits.git_commit_tree_id, commits.commit_url, commits.compare,
					commits.commit_sender_name, commits.commit_sender_avatar, commits.commit_added_files,
					commits.commit_removed_files, commits.commit_modified_files, commits.committed_at
				)
				THEN GREATEST(EXCLUDED.updated_at, commits.updated_at)
				ELSE commits.updated_at
			END
		RETURNING ` + commitColumns

	updatedAt := commit.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = commit.CreatedAt
	}

	stored, err := scanCommit(x.db.QueryRowContext(ctx, query,
		commit.SHA,
		commit.RepoID,
		commit.PullRequestID,
		commit.Message,
		commit.Author,
		commit.Branch,
		commit.TreeID,
		commit.URL,
		commit.Compare,
		commit.SenderName,
		commit.SenderAvatar,
		pq.Array(commit.Added),
		pq.Array(commit.Removed),
		pq.Array(commit.Modified),
		commit.Haiku,
		nullTime(commit.CommittedAt),
		commit.CreatedAt,
		updatedAt,
	))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to upsert commit", goerr.V("sha", commit.SHA))
	}

	return stored, nil
}

func (x *Client) GetCommit(ctx context.Context, sha types.CommitSHA) (*model.Commit, error) {
	query := `SELECT ` + commitColumns + ` FROM commits WHERE commit_id = $1`
	commit, err := scanCommit(x.db.QueryRowContext(ctx, query, sha))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(repository.ErrNotFound, "commit not found", goerr.V("sha", sha))
		}
		return nil, goerr.Wrap(err, "failed to get commit", goerr.V("sha", sha))
	}
	return commit, nil
}

func (x *Client) ListCommitsByRepository(ctx context.Context, repoID types.RepoID) ([]*model.Commit, error) {
	return x.listCommits(ctx, "repo_id = $1", repoID)
}

func (x *Client) ListCommitsByPullRequest(ctx context.Context, prID types.PullRequestID) ([]*model.Commit, error) {
	return x.listCommits(ctx, "pr_id = $1", prID)
}

func (x *Client) listCommits(ctx context.Context, where string, args ...any) ([]*model.Commit, error) {
	query := `SELECT ` + commitColumns + ` FROM commits WHERE ` + where +
		` ORDER BY committed_at NULLS FIRST, commit_id`
	rows, err := x.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits", goerr.V("args", args))
	}
	defer safe.Close(rows)

	var commits []*model.Commit
	for rows.Next() {
		commit, err := scanCommit(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan commit")
		}
		commits = append(commits, commit)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate commits")
	}

	return commits, nil
}
