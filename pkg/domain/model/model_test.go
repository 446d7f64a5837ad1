package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestPushInputBranch(t *testing.T) {
	testCases := map[string]struct {
		ref  string
		want string
	}{
		"heads":      {ref: "refs/heads/main", want: "main"},
		"nested":     {ref: "refs/heads/feature/login", want: "login"},
		"tag":        {ref: "refs/tags/v1.0.0", want: "v1.0.0"},
		"no slash":   {ref: "main", want: "main"},
		"empty":      {ref: "", want: ""},
		"trailing /": {ref: "refs/heads/", want: ""},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			input := &model.PushInput{Ref: tc.ref}
			gt.Equal(t, input.Branch(), tc.want)
		})
	}
}

func TestPushInputValidate(t *testing.T) {
	valid := func() *model.PushInput {
		return &model.PushInput{
			Repository: model.PushRepository{GitRepoID: 42, Name: "foo"},
			Commits:    []*model.PushCommit{{SHA: "abc123"}},
		}
	}

	t.Run("valid", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("no commits is valid", func(t *testing.T) {
		input := valid()
		input.Commits = nil
		gt.NoError(t, input.Validate())
	})

	t.Run("missing repository id", func(t *testing.T) {
		input := valid()
		input.Repository.GitRepoID = 0
		gt.Error(t, input.Validate()).Is(types.ErrValidationFailed)
	})

	t.Run("missing repository name", func(t *testing.T) {
		input := valid()
		input.Repository.Name = ""
		gt.Error(t, input.Validate()).Is(types.ErrValidationFailed)
	})

	t.Run("missing commit id", func(t *testing.T) {
		input := valid()
		input.Commits = append(input.Commits, &model.PushCommit{})
		gt.Error(t, input.Validate()).Is(types.ErrValidationFailed)
	})
}

func TestPushInputToCommit(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	ts := now.Add(-time.Hour)
	input := &model.PushInput{
		Ref:     "refs/heads/main",
		Compare: "https://github.com/o/foo/compare/a...b",
		Sender:  model.PushSender{Login: "octocat", AvatarURL: "https://avatars/1"},
	}
	pc := &model.PushCommit{
		SHA:       "abc123",
		TreeID:    "tree1",
		Message:   "init",
		Author:    "Octo Cat",
		Timestamp: ts,
		Added:     []string{"README.md"},
	}

	c := input.ToCommit(pc, 7, now)
	gt.Equal(t, c.SHA, types.CommitSHA("abc123"))
	gt.Equal(t, *c.RepoID, types.RepoID(7))
	gt.Nil(t, c.PullRequestID)
	gt.Equal(t, c.Branch, "main")
	gt.Equal(t, c.SenderName, "octocat")
	gt.Equal(t, c.CommittedAt, ts)
	gt.A(t, c.Added).Length(1)
	gt.NotNil(t, c.Removed)
	gt.A(t, c.Removed).Length(0)
	gt.NotNil(t, c.Modified)
	gt.Nil(t, c.Haiku)
}

func TestCommitMerge(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	repoID := types.RepoID(1)
	haiku := "old pond"

	base := &model.Commit{
		SHA:         "abc123",
		RepoID:      &repoID,
		Message:     "init",
		Branch:      "main",
		SenderName:  "octocat",
		Compare:     "https://compare",
		Added:       []string{"a.go"},
		Removed:     []string{},
		Modified:    []string{},
		Haiku:       &haiku,
		CommittedAt: t0,
		CreatedAt:   t0,
		UpdatedAt:   t0,
	}

	t.Run("partial update keeps existing values", func(t *testing.T) {
		prID := types.PullRequestID(99)
		update := &model.Commit{
			SHA:           "abc123",
			PullRequestID: &prID,
			Branch:        "feature",
			CreatedAt:     t0.Add(time.Hour),
			UpdatedAt:     t0.Add(time.Hour),
		}

		merged := base.Merge(update)
		gt.Equal(t, *merged.RepoID, repoID)
		gt.Equal(t, *merged.PullRequestID, prID)
		gt.Equal(t, merged.Branch, "feature")
		gt.Equal(t, merged.Message, "init")
		gt.Equal(t, merged.SenderName, "octocat")
		gt.Equal(t, merged.Compare, "https://compare")
		gt.A(t, merged.Added).Length(1)
		gt.Equal(t, merged.CommittedAt, t0)
		gt.Equal(t, merged.CreatedAt, t0)
		gt.Equal(t, merged.UpdatedAt, t0.Add(time.Hour))
		gt.Equal(t, *merged.Haiku, haiku)
	})

	t.Run("base is not modified", func(t *testing.T) {
		_ = base.Merge(&model.Commit{Message: "changed", Added: []string{"b.go"}})
		gt.Equal(t, base.Message, "init")
		gt.A(t, base.Added).Length(1).At(0, func(t testing.TB, v string) {
			gt.Equal(t, v, "a.go")
		})
	})

	t.Run("identical update keeps updated time", func(t *testing.T) {
		update := *base
		update.Haiku = nil
		update.CreatedAt = t0.Add(time.Hour)
		update.UpdatedAt = t0.Add(time.Hour)

		merged := base.Merge(&update)
		gt.Equal(t, merged.UpdatedAt, t0)
		gt.Equal(t, merged.CreatedAt, t0)
	})

	t.Run("empty list replaces", func(t *testing.T) {
		merged := base.Merge(&model.Commit{Added: []string{}})
		gt.A(t, merged.Added).Length(0)
	})
}

func TestGitHubPullRequestToPullRequest(t *testing.T) {
	merged := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	t.Run("merged pull request", func(t *testing.T) {
		pr := (&model.GitHubPullRequest{ID: 1, Number: 3, State: "closed", MergedAt: &merged}).ToPullRequest(5)
		gt.Equal(t, pr.State, types.PullRequestMerged)
		gt.Equal(t, pr.RepoID, types.RepoID(5))
	})

	t.Run("closed without merge", func(t *testing.T) {
		pr := (&model.GitHubPullRequest{ID: 1, Number: 3, State: "closed"}).ToPullRequest(5)
		gt.Equal(t, pr.State, types.PullRequestClosed)
	})

	t.Run("commit takes head branch and pull request id", func(t *testing.T) {
		pr := (&model.GitHubPullRequest{ID: 11, Number: 3, State: "open", HeadBranch: "topic"}).ToPullRequest(5)
		c := (&model.GitHubCommit{SHA: "def456", Message: "fix"}).ToCommit(5, pr, merged)
		gt.Equal(t, *c.PullRequestID, types.PullRequestID(11))
		gt.Equal(t, c.Branch, "topic")
		gt.Nil(t, c.Added)
	})
}

func TestUser(t *testing.T) {
	t.Run("normalize email", func(t *testing.T) {
		gt.Equal(t, model.NormalizeEmail("  Alice@Example.COM "), "alice@example.com")
	})

	t.Run("register input", func(t *testing.T) {
		input := &model.RegisterInput{Name: "alice", Email: "alice@example.com", Password: "password1"}
		gt.NoError(t, input.Validate())

		input.Password = "short"
		gt.Error(t, input.Validate()).Is(types.ErrValidationFailed)

		input.Password = "password1"
		input.Email = "not-an-email"
		gt.Error(t, input.Validate()).Is(types.ErrValidationFailed)

		input.Email = "alice@example.com"
		input.Name = " "
		gt.Error(t, input.Validate()).Is(types.ErrValidationFailed)
	})

	t.Run("login input", func(t *testing.T) {
		gt.Error(t, (&model.LoginInput{Email: "a@example.com"}).Validate()).Is(types.ErrValidationFailed)
		gt.NoError(t, (&model.LoginInput{Email: "a@example.com", Password: "x"}).Validate())
	})

	t.Run("payload", func(t *testing.T) {
		u := &model.User{ID: 3, Email: "a@example.com"}
		gt.Equal(t, u.Payload(), model.TokenPayload{UserID: 3, Email: "a@example.com"})
	})
}

func TestCommitRecordRaw(t *testing.T) {
	ts := time.Date(2024, 5, 1, 0, 0, 1, 0, time.UTC)
	repo := &model.Repository{ID: 1, Name: "foo"}
	rec := model.NewCommitRecord(repo, &model.Commit{SHA: "abc123", CommittedAt: ts}, ts)
	raw := rec.Raw()
	gt.Equal(t, raw.CommittedAt, ts.UnixMicro())
	gt.Equal(t, raw.RepoName, "foo")
}

func TestNewCommitsPushedEvent(t *testing.T) {
	repo := &model.Repository{ID: 1, GitRepoID: 42, Name: "foo"}
	ev := model.NewCommitsPushedEvent(repo, "main", []*model.Commit{
		{SHA: "a", Message: "m1"},
		{SHA: "b", Message: "m2"},
	}, time.Now())
	gt.A(t, ev.SHAs).Length(2).At(1, func(t testing.TB, v types.CommitSHA) {
		gt.Equal(t, v, types.CommitSHA("b"))
	})
	gt.Equal(t, ev.Messages[0], "m1")
}
