package model

import (
	"slices"
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/types"
)

// Commit is identified by its SHA only. A commit may arrive first from a push
// webhook and later from pull request backfill; both paths upsert into the
// same record.
type Commit struct {
	SHA           types.CommitSHA      `json:"commit_id"`
	RepoID        *types.RepoID        `json:"repo_id"`
	PullRequestID *types.PullRequestID `json:"pr_id"`
	Message       string               `json:"commit_message"`
	Author        string               `json:"author"`
	Branch        string               `json:"branch"`
	TreeID        string               `json:"git_commit_tree_id"`
	URL           string               `json:"commit_url"`
	Compare       string               `json:"compare"`
	SenderName    string               `json:"commit_sender_name"`
	SenderAvatar  string               `json:"commit_sender_avatar"`
	Added         []string             `json:"commit_added_files"`
	Removed       []string             `json:"commit_removed_files"`
	Modified      []string             `json:"commit_modified_files"`
	Haiku         *string              `json:"commit_haiku"`
	CommittedAt   time.Time            `json:"committed_at"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// Merge returns a new Commit that applies non-empty fields of update on top of
// x. Empty fields of update keep the value of x, so a later partial upsert never
// clears data written by an earlier one. Haiku and CreatedAt are always kept.
// UpdatedAt moves only when another field changed.
func (x *Commit) Merge(update *Commit) *Commit {
	merged := *x

	if update.RepoID != nil {
		v := *update.RepoID
		merged.RepoID = &v
	}
	if update.PullRequestID != nil {
		v := *update.PullRequestID
		merged.PullRequestID = &v
	}

	mergeString(&merged.Message, update.Message)
	mergeString(&merged.Author, update.Author)
	mergeString(&merged.Branch, update.Branch)
	mergeString(&merged.TreeID, update.TreeID)
	mergeString(&merged.URL, update.URL)
	mergeString(&merged.Compare, update.Compare)
	mergeString(&merged.SenderName, update.SenderName)
	mergeString(&merged.SenderAvatar, update.SenderAvatar)

	if update.Added != nil {
		merged.Added = append([]string{}, update.Added...)
	}
	if update.Removed != nil {
		merged.Removed = append([]string{}, update.Removed...)
	}
	if update.Modified != nil {
		merged.Modified = append([]string{}, update.Modified...)
	}

	if !update.CommittedAt.IsZero() {
		merged.CommittedAt = update.CommittedAt
	}
	if !update.UpdatedAt.IsZero() && !merged.sameContent(x) {
		merged.UpdatedAt = update.UpdatedAt
	}

	return &merged
}

// sameContent compares every field that Merge may overwrite, except UpdatedAt
func (x *Commit) sameContent(y *Commit) bool {
	return equalPtr(x.RepoID, y.RepoID) &&
		equalPtr(x.PullRequestID, y.PullRequestID) &&
		x.Message == y.Message &&
		x.Author == y.Author &&
		x.Branch == y.Branch &&
		x.TreeID == y.TreeID &&
		x.URL == y.URL &&
		x.Compare == y.Compare &&
		x.SenderName == y.SenderName &&
		x.SenderAvatar == y.SenderAvatar &&
		slices.Equal(x.Added, y.Added) &&
		slices.Equal(x.Removed, y.Removed) &&
		slices.Equal(x.Modified, y.Modified) &&
		x.CommittedAt.Equal(y.CommittedAt)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// CommitRecord is the flattened row exported to BigQuery. It defines the table
// schema; rows are written as CommitRawRecord.
type CommitRecord struct {
	SHA         string    `bigquery:"sha" json:"sha"`
	RepoID      int64     `bigquery:"repo_id" json:"repo_id"`
	RepoName    string    `bigquery:"repo_name" json:"repo_name"`
	Branch      string    `bigquery:"branch" json:"branch"`
	Message     string    `bigquery:"message" json:"message"`
	Author      string    `bigquery:"author" json:"author"`
	URL         string    `bigquery:"url" json:"url"`
	Added       []string  `bigquery:"added" json:"added"`
	Removed     []string  `bigquery:"removed" json:"removed"`
	Modified    []string  `bigquery:"modified" json:"modified"`
	CommittedAt time.Time `bigquery:"committed_at" json:"committed_at"`
	ExportedAt  time.Time `bigquery:"exported_at" json:"exported_at"`
}

func NewCommitRecord(repo *Repository, commit *Commit, now time.Time) *CommitRecord {
	return &CommitRecord{
		SHA:         string(commit.SHA),
		RepoID:      int64(repo.ID),
		RepoName:    repo.Name,
		Branch:      commit.Branch,
		Message:     commit.Message,
		Author:      commit.Author,
		URL:         commit.URL,
		Added:       commit.Added,
		Removed:     commit.Removed,
		Modified:    commit.Modified,
		CommittedAt: commit.CommittedAt,
		ExportedAt:  now,
	}
}

// CommitRawRecord carries timestamps as epoch microseconds, the wire format of
// TIMESTAMP columns in the Storage Write API
type CommitRawRecord struct {
	SHA         string   `json:"sha"`
	RepoID      int64    `json:"repo_id"`
	RepoName    string   `json:"repo_name"`
	Branch      string   `json:"branch"`
	Message     string   `json:"message"`
	Author      string   `json:"author"`
	URL         string   `json:"url"`
	Added       []string `json:"added"`
	Removed     []string `json:"removed"`
	Modified    []string `json:"modified"`
	CommittedAt int64    `json:"committed_at"`
	ExportedAt  int64    `json:"exported_at"`
}

func (x *CommitRecord) Raw() *CommitRawRecord {
	return &CommitRawRecord{
		SHA:         x.SHA,
		RepoID:      x.RepoID,
		RepoName:    x.RepoName,
		Branch:      x.Branch,
		Message:     x.Message,
		Author:      x.Author,
		URL:         x.URL,
		Added:       x.Added,
		Removed:     x.Removed,
		Modified:    x.Modified,
		CommittedAt: x.CommittedAt.UnixMicro(),
		ExportedAt:  x.ExportedAt.UnixMicro(),
	}
}
