package model

import (
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/types"
)

// Repository represents a GitHub repository tracked by gittales. ID is assigned
// on first sight and never changes; GitRepoID is the key for de-duplication.
type Repository struct {
	ID          types.RepoID       `json:"repo_id"`
	GitRepoID   types.GitHubRepoID `json:"git_repo_id"`
	Name        string             `json:"repo_name"`
	Link        string             `json:"repo_link"`
	Description string             `json:"repo_description"`
	Language    string             `json:"repo_language"`
	OwnerID     int64              `json:"repo_owner_id"`
	OwnerLogin  string             `json:"repo_owner_name"`
	OwnerLink   string             `json:"repo_owner_link"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
