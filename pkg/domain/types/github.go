package types

import (
	"log/slog"
	"strconv"
)

type (
	// RepoID is the internal sequential identifier of a repository
	RepoID int64
	// GitHubRepoID is the repository ID assigned by GitHub
	GitHubRepoID int64
	// PullRequestID is the pull request ID assigned by GitHub (not the number)
	PullRequestID int64
	CommitSHA     string

	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	WebhookSecret       string

	PullRequestState string
)

const (
	PullRequestOpen   PullRequestState = "open"
	PullRequestClosed PullRequestState = "closed"
	PullRequestMerged PullRequestState = "merged"
)

func (x RepoID) String() string        { return strconv.FormatInt(int64(x), 10) }
func (x GitHubRepoID) String() string  { return strconv.FormatInt(int64(x), 10) }
func (x PullRequestID) String() string { return strconv.FormatInt(int64(x), 10) }

func (x WebhookSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x WebhookSecret) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
