package testhelper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gittales/pkg/domain/interfaces"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for interfaces.Database. Every implementation
// must pass it. Records use random keys so that the suite can run against a
// shared database.
func TestAll(t *testing.T, db interfaces.Database) {
	t.Run("Sequence", func(t *testing.T) {
		TestSequence(t, db)
	})
	t.Run("RepositoryCRUD", func(t *testing.T) {
		TestRepositoryCRUD(t, db)
	})
	t.Run("PullRequestUpsert", func(t *testing.T) {
		TestPullRequestUpsert(t, db)
	})
	t.Run("CommitUpsert", func(t *testing.T) {
		TestCommitUpsert(t, db)
	})
	t.Run("UserCRUD", func(t *testing.T) {
		TestUserCRUD(t, db)
	})
	t.Run("RefreshTokenSwap", func(t *testing.T) {
		TestRefreshTokenSwap(t, db)
	})
}

func randomID() int64 {
	return rand.Int64N(1<<40) + 1
}

func newRepository() *model.Repository {
	now := time.Now().UTC().Truncate(time.Second)
	suffix := uuid.NewString()[:8]
	return &model.Repository{
		ID:          types.RepoID(randomID()),
		GitRepoID:   types.GitHubRepoID(randomID()),
		Name:        "repo-" + suffix,
		Link:        "https://github.com/owner-" + suffix + "/repo-" + suffix,
		Description: "test repository",
		Language:    "Go",
		OwnerID:     randomID(),
		OwnerLogin:  "owner-" + suffix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestSequence(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	name := types.SequenceName("test_seq_" + uuid.NewString()[:8])

	first := gt.R1(db.NextID(ctx, name)).NoError(t)
	gt.V(t, first).Equal(int64(1))
	second := gt.R1(db.NextID(ctx, name)).NoError(t)
	gt.V(t, second).Equal(int64(2))

	// Concurrent allocations never return the same value
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := db.NextID(ctx, name)
			gt.NoError(t, err)
			mu.Lock()
			defer mu.Unlock()
			gt.False(t, seen[id])
			seen[id] = true
		}()
	}
	wg.Wait()
	gt.V(t, len(seen)).Equal(10)
}

func TestRepositoryCRUD(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	repo := newRepository()

	_, err := db.GetRepositoryByGitID(ctx, repo.GitRepoID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	gt.NoError(t, db.CreateRepository(ctx, repo))

	byID := gt.R1(db.GetRepository(ctx, repo.ID)).NoError(t)
	gt.V(t, byID.GitRepoID).Equal(repo.GitRepoID)
	gt.V(t, byID.Name).Equal(repo.Name)
	gt.V(t, byID.Language).Equal(repo.Language)
	gt.True(t, byID.CreatedAt.Equal(repo.CreatedAt))

	byGitID := gt.R1(db.GetRepositoryByGitID(ctx, repo.GitRepoID)).NoError(t)
	gt.V(t, byGitID.ID).Equal(repo.ID)

	byName := gt.R1(db.GetRepositoryByName(ctx, repo.OwnerLogin, repo.Name)).NoError(t)
	gt.V(t, byName.ID).Equal(repo.ID)

	_, err = db.GetRepositoryByName(ctx, "someone-else", repo.Name)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// GitHub owner and repository names are case-insensitive
	byUpperName := gt.R1(db.GetRepositoryByName(ctx, strings.ToUpper(repo.OwnerLogin), strings.ToUpper(repo.Name))).NoError(t)
	gt.V(t, byUpperName.ID).Equal(repo.ID)
	gt.V(t, byUpperName.OwnerLogin).Equal(repo.OwnerLogin)

	// Same external ID with another internal ID is rejected
	dup := newRepository()
	dup.GitRepoID = repo.GitRepoID
	err = db.CreateRepository(ctx, dup)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	repos := gt.R1(db.ListRepositories(ctx)).NoError(t)
	var found int
	for _, r := range repos {
		if r.GitRepoID == repo.GitRepoID {
			found++
			gt.V(t, r.ID).Equal(repo.ID)
		}
	}
	gt.V(t, found).Equal(1)
}

func TestPullRequestUpsert(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	repo := newRepository()
	gt.NoError(t, db.CreateRepository(ctx, repo))

	now := time.Now().UTC().Truncate(time.Second)
	pr := &model.PullRequest{
		ID:          types.PullRequestID(randomID()),
		Number:      7,
		RepoID:      repo.ID,
		Title:       "Add feature",
		State:       types.PullRequestOpen,
		Author:      "blue",
		BaseBranch:  "main",
		HeadBranch:  "feature",
		CommitsLink: "https://api.github.com/repos/o/r/pulls/7/commits",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	gt.NoError(t, db.UpsertPullRequest(ctx, pr))

	got := gt.R1(db.GetPullRequest(ctx, pr.ID)).NoError(t)
	gt.V(t, got.Title).Equal("Add feature")
	gt.V(t, got.State).Equal(types.PullRequestOpen)
	gt.V(t, got.MergedAt).Equal(nil)

	// Second upsert overwrites fields in place
	mergedAt := now.Add(time.Hour)
	pr.Title = "Add feature (v2)"
	pr.State = types.PullRequestMerged
	pr.MergedAt = &mergedAt
	pr.UpdatedAt = mergedAt
	gt.NoError(t, db.UpsertPullRequest(ctx, pr))

	got = gt.R1(db.GetPullRequest(ctx, pr.ID)).NoError(t)
	gt.V(t, got.Title).Equal("Add feature (v2)")
	gt.V(t, got.State).Equal(types.PullRequestMerged)
	gt.True(t, got.MergedAt != nil && got.MergedAt.Equal(mergedAt))

	prs := gt.R1(db.ListPullRequests(ctx, repo.ID)).NoError(t)
	gt.A(t, prs).Length(1)

	_, err := db.GetPullRequest(ctx, types.PullRequestID(randomID()))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestCommitUpsert(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	repo := newRepository()
	gt.NoError(t, db.CreateRepository(ctx, repo))

	now := time.Now().UTC().Truncate(time.Second)
	pr := &model.PullRequest{
		ID:         types.PullRequestID(randomID()),
		Number:     1,
		RepoID:     repo.ID,
		State:      types.PullRequestOpen,
		HeadBranch: "feature",
		BaseBranch: "main",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	gt.NoError(t, db.UpsertPullRequest(ctx, pr))

	sha := types.CommitSHA(fmt.Sprintf("%040x", randomID()))
	haiku := "autumn moonlight"
	pushed := &model.Commit{
		SHA:          sha,
		RepoID:       &repo.ID,
		Message:      "fix",
		Author:       "blue",
		Branch:       "main",
		TreeID:       "tree1",
		URL:          "https://github.com/o/r/commit/" + string(sha),
		Compare:      "https://github.com/o/r/compare/a...b",
		SenderName:   "blue",
		SenderAvatar: "https://avatars.example.com/blue",
		Added:        []string{"a.go"},
		Removed:      []string{},
		Modified:     []string{"b.go", "c.go"},
		Haiku:        &haiku,
		CommittedAt:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	stored := gt.R1(db.UpsertCommit(ctx, pushed)).NoError(t)
	gt.V(t, stored.SHA).Equal(sha)
	gt.V(t, stored.PullRequestID).Equal(nil)
	gt.V(t, stored.Modified).Equal([]string{"b.go", "c.go"})

	// Backfill from the pull request path carries no file lists
	later := now.Add(time.Minute)
	otherHaiku := "should not overwrite"
	backfill := &model.Commit{
		SHA:           sha,
		RepoID:        &repo.ID,
		PullRequestID: &pr.ID,
		Message:       "fix",
		Author:        "blue",
		Branch:        "feature",
		TreeID:        "tree1",
		Haiku:         &otherHaiku,
		CommittedAt:   now,
		CreatedAt:     later,
		UpdatedAt:     later,
	}
	merged := gt.R1(db.UpsertCommit(ctx, backfill)).NoError(t)
	gt.True(t, merged.PullRequestID != nil)
	gt.V(t, *merged.PullRequestID).Equal(pr.ID)
	gt.V(t, merged.Branch).Equal("feature")
	gt.V(t, merged.Added).Equal([]string{"a.go"})
	gt.V(t, merged.Modified).Equal([]string{"b.go", "c.go"})
	gt.V(t, merged.Compare).Equal(pushed.Compare)
	gt.V(t, merged.SenderAvatar).Equal(pushed.SenderAvatar)
	gt.True(t, merged.Haiku != nil)
	gt.V(t, *merged.Haiku).Equal(haiku)
	gt.True(t, merged.CreatedAt.Equal(now))
	gt.True(t, merged.UpdatedAt.Equal(later))

	got := gt.R1(db.GetCommit(ctx, sha)).NoError(t)
	gt.V(t, got.Message).Equal("fix")
	gt.True(t, got.PullRequestID != nil)

	// Replaying the same backfill later does not touch updated_at
	replay := *backfill
	replay.UpdatedAt = later.Add(time.Hour)
	replayed := gt.R1(db.UpsertCommit(ctx, &replay)).NoError(t)
	gt.True(t, replayed.UpdatedAt.Equal(later))

	byRepo := gt.R1(db.ListCommitsByRepository(ctx, repo.ID)).NoError(t)
	gt.A(t, byRepo).Length(1)
	byPR := gt.R1(db.ListCommitsByPullRequest(ctx, pr.ID)).NoError(t)
	gt.A(t, byPR).Length(1)

	_, err := db.GetCommit(ctx, "0000000000000000000000000000000000000000")
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func newUser(t *testing.T, db interfaces.Database) *model.User {
	now := time.Now().UTC().Truncate(time.Second)
	id := gt.R1(db.NextID(context.Background(), types.SequenceName("test_user_"+uuid.NewString()[:8]))).NoError(t)
	return &model.User{
		ID:             types.UserID(randomID() + id),
		Name:           "Blue",
		Email:          "blue-" + uuid.NewString()[:8] + "@example.com",
		PasswordDigest: "$2a$10$digest",
		Bio:            "hello",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestUserCRUD(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	user := newUser(t, db)

	gt.NoError(t, db.CreateUser(ctx, user))

	got := gt.R1(db.GetUser(ctx, user.ID)).NoError(t)
	gt.V(t, got.Email).Equal(user.Email)
	gt.V(t, got.PasswordDigest).Equal(user.PasswordDigest)
	gt.V(t, got.RefreshToken).Equal("")

	byEmail := gt.R1(db.GetUserByEmail(ctx, user.Email)).NoError(t)
	gt.V(t, byEmail.ID).Equal(user.ID)

	dup := newUser(t, db)
	dup.Email = user.Email
	err := db.CreateUser(ctx, dup)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	_, err = db.GetUser(ctx, dup.ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
	_, err = db.GetUserByEmail(ctx, "nobody-"+uuid.NewString()+"@example.com")
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	gt.NoError(t, db.UpdateRefreshToken(ctx, user.ID, "token-1"))
	got = gt.R1(db.GetUser(ctx, user.ID)).NoError(t)
	gt.V(t, got.RefreshToken).Equal("token-1")

	gt.NoError(t, db.UpdateRefreshToken(ctx, user.ID, ""))
	got = gt.R1(db.GetUser(ctx, user.ID)).NoError(t)
	gt.V(t, got.RefreshToken).Equal("")

	err = db.UpdateRefreshToken(ctx, dup.ID, "token")
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestRefreshTokenSwap(t *testing.T, db interfaces.Database) {
	ctx := context.Background()
	user := newUser(t, db)
	gt.NoError(t, db.CreateUser(ctx, user))
	gt.NoError(t, db.UpdateRefreshToken(ctx, user.ID, "v1"))

	gt.NoError(t, db.SwapRefreshToken(ctx, user.ID, "v1", "v2"))

	err := db.SwapRefreshToken(ctx, user.ID, "v1", "v3")
	gt.True(t, errors.Is(err, repository.ErrStaleValue))

	got := gt.R1(db.GetUser(ctx, user.ID)).NoError(t)
	gt.V(t, got.RefreshToken).Equal("v2")

	// Only one of concurrent swaps from the same value wins
	var wg sync.WaitGroup
	var mu sync.Mutex
	var wins int
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := db.SwapRefreshToken(ctx, user.ID, "v2", fmt.Sprintf("v3-%d", i))
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
				return
			}
			gt.True(t, errors.Is(err, repository.ErrStaleValue))
		}(i)
	}
	wg.Wait()
	gt.V(t, wins).Equal(1)

	err = db.SwapRefreshToken(ctx, types.UserID(randomID()), "", "x")
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
