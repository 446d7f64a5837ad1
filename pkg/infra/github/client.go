package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const (
	apiVersion     = "2022-11-28"
	defaultTimeout = 30 * time.Second
	perPage        = 100
)

type Client struct {
	client *github.Client

	token     types.GitHubToken
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithToken authenticates requests with a personal access token
func WithToken(token types.GitHubToken) Option {
	return func(x *Client) {
		x.token = token
	}
}

// WithApp authenticates requests as a GitHub App installation
func WithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) Option {
	return func(x *Client) {
		x.appID = appID
		x.installID = installID
		x.pem = pem
	}
}

// WithBaseURL replaces https://api.github.com/, e.g. for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(x *Client) {
		x.timeout = timeout
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(options ...Option) (*Client, error) {
	x := &Client{
		timeout:   defaultTimeout,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(x)
	}

	tr, err := x.buildTransport()
	if err != nil {
		return nil, err
	}

	client := github.NewClient(&http.Client{
		Transport: tr,
		Timeout:   x.timeout,
	})

	if x.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(x.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL", goerr.V("url", x.baseURL))
		}
		client.BaseURL = u
	}

	x.client = client
	return x, nil
}

func (x *Client) buildTransport() (http.RoundTripper, error) {
	base := &apiVersionTransport{base: x.transport}

	switch {
	case x.token != "" && x.appID != 0:
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token and GitHub App are exclusive")

	case x.token != "":
		return &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)}),
			Base:   base,
		}, nil

	case x.appID != 0:
		if x.installID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App installation ID is empty")
		}
		if x.pem == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is empty")
		}

		itr, err := ghinstallation.New(base, int64(x.appID), int64(x.installID), []byte(x.pem))
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "failed to create GitHub App transport",
				goerr.V("app_id", x.appID),
				goerr.V("install_id", x.installID),
				goerr.V("cause", err.Error()),
			)
		}
		if x.baseURL != "" {
			itr.BaseURL = strings.TrimSuffix(x.baseURL, "/")
		}
		return itr, nil
	}

	return nil, goerr.Wrap(types.ErrInvalidOption, "either GitHub token or GitHub App is required")
}

type apiVersionTransport struct {
	base http.RoundTripper
}

func (x *apiVersionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	return x.base.RoundTrip(req)
}

func upstreamError(err error, msg string, options ...goerr.Option) error {
	return goerr.Wrap(fmt.Errorf("%w: %w", types.ErrUpstreamFailure, err), msg, options...)
}

func (x *Client) ListPullRequests(ctx context.Context, owner, repo string) ([]*model.GitHubPullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var results []*model.GitHubPullRequest
	for {
		prs, resp, err := x.client.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, upstreamError(err, "failed to list pull requests",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
			)
		}

		for _, pr := range prs {
			results = append(results, toPullRequest(pr))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	logging.From(ctx).Debug("Listed pull requests",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.Int("count", len(results)),
	)

	return results, nil
}

func (x *Client) ListPullRequestCommits(ctx context.Context, owner, repo string, number int) ([]*model.GitHubCommit, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var results []*model.GitHubCommit
	for {
		commits, resp, err := x.client.PullRequests.ListCommits(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, upstreamError(err, "failed to list pull request commits",
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("number", number),
			)
		}

		for _, c := range commits {
			results = append(results, toCommit(c))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return results, nil
}

func toPullRequest(pr *github.PullRequest) *model.GitHubPullRequest {
	result := &model.GitHubPullRequest{
		ID:         types.PullRequestID(pr.GetID()),
		Number:     pr.GetNumber(),
		Title:      pr.GetTitle(),
		State:      pr.GetState(),
		Author:     pr.GetUser().GetLogin(),
		BaseBranch: pr.GetBase().GetRef(),
		HeadBranch: pr.GetHead().GetRef(),
		CommitsURL: pr.GetCommitsURL(),
		CreatedAt:  pr.GetCreatedAt().Time,
		UpdatedAt:  pr.GetUpdatedAt().Time,
	}
	if pr.MergedAt != nil {
		mergedAt := pr.MergedAt.Time
		result.MergedAt = &mergedAt
	}
	return result
}

func toCommit(c *github.RepositoryCommit) *model.GitHubCommit {
	author := c.GetAuthor().GetLogin()
	if author == "" {
		author = c.GetCommit().GetAuthor().GetName()
	}

	return &model.GitHubCommit{
		SHA:         types.CommitSHA(c.GetSHA()),
		TreeID:      c.GetCommit().GetTree().GetSHA(),
		Message:     c.GetCommit().GetMessage(),
		URL:         c.GetHTMLURL(),
		Author:      author,
		CommittedAt: c.GetCommit().GetAuthor().GetDate().Time,
	}
}
