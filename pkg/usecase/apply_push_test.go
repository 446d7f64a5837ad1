package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/gittales/pkg/domain/mock"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/infra"
	"github.com/m-mizutani/gittales/pkg/infra/dedup"
	"github.com/m-mizutani/gittales/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func TestApplyPush(t *testing.T) {
	t.Run("first push creates repository and commit", func(t *testing.T) {
		env := newTestEnv(t)

		commits := gt.R1(env.uc.ApplyPush(env.ctx, newPushInput())).NoError(t)
		gt.A(t, commits).Length(1).At(0, func(t testing.TB, v *model.Commit) {
			gt.Equal(t, v.SHA, types.CommitSHA("abc123"))
			gt.Equal(t, *v.RepoID, types.RepoID(1))
			gt.Nil(t, v.PullRequestID)
			gt.Equal(t, v.Branch, "main")
			gt.Equal(t, v.SenderName, "octocat")
			gt.Nil(t, v.Haiku)
		})

		repo := gt.R1(env.db.GetRepositoryByGitID(env.ctx, 42)).NoError(t)
		gt.Equal(t, repo.ID, types.RepoID(1))
		gt.Equal(t, repo.Name, "foo")
		gt.Equal(t, repo.OwnerLogin, "octo")
	})

	t.Run("same payload twice leaves store unchanged", func(t *testing.T) {
		env := newTestEnv(t)

		first := gt.R1(env.uc.ApplyPush(env.ctx, newPushInput())).NoError(t)
		env.clock.Advance(time.Hour)
		second := gt.R1(env.uc.ApplyPush(env.ctx, newPushInput())).NoError(t)
		gt.Equal(t, first, second)
		gt.Equal(t, second[0].UpdatedAt, baseTime)

		repos := gt.R1(env.db.ListRepositories(env.ctx)).NoError(t)
		gt.A(t, repos).Length(1)
		commits := gt.R1(env.db.ListCommitsByRepository(env.ctx, 1)).NoError(t)
		gt.A(t, commits).Length(1)
	})

	t.Run("changed payload moves updated time", func(t *testing.T) {
		env := newTestEnv(t)

		gt.R1(env.uc.ApplyPush(env.ctx, newPushInput())).NoError(t)
		env.clock.Advance(time.Hour)
		input := newPushInput()
		input.Ref = "refs/heads/release"
		commits := gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.Equal(t, commits[0].Branch, "release")
		gt.Equal(t, commits[0].CreatedAt, baseTime)
		gt.Equal(t, commits[0].UpdatedAt, baseTime.Add(time.Hour))
	})

	t.Run("repositories get sequential IDs", func(t *testing.T) {
		env := newTestEnv(t)

		gt.R1(env.uc.ApplyPush(env.ctx, newPushInput())).NoError(t)
		other := newPushInput()
		other.Repository.GitRepoID = 43
		other.Repository.Name = "bar"
		other.Commits[0].SHA = "def456"
		commits := gt.R1(env.uc.ApplyPush(env.ctx, other)).NoError(t)
		gt.Equal(t, *commits[0].RepoID, types.RepoID(2))
	})

	t.Run("push without commits registers repository", func(t *testing.T) {
		env := newTestEnv(t)
		input := newPushInput()
		input.Commits = nil

		commits := gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.A(t, commits).Length(0)
		gt.R1(env.db.GetRepositoryByGitID(env.ctx, 42)).NoError(t)
	})

	t.Run("commits keep payload order", func(t *testing.T) {
		env := newTestEnv(t)
		input := newPushInput()
		input.Commits = append(input.Commits,
			&model.PushCommit{SHA: "bbb222", Message: "second"},
			&model.PushCommit{SHA: "aaa111", Message: "third"},
		)

		commits := gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.A(t, commits).Length(3)
		gt.Equal(t, commits[1].SHA, types.CommitSHA("bbb222"))
		gt.Equal(t, commits[2].SHA, types.CommitSHA("aaa111"))
	})

	t.Run("invalid payload writes nothing", func(t *testing.T) {
		env := newTestEnv(t)
		input := newPushInput()
		input.Repository.GitRepoID = 0

		_, err := env.uc.ApplyPush(env.ctx, input)
		gt.Error(t, err).Is(types.ErrValidationFailed)
		repos := gt.R1(env.db.ListRepositories(env.ctx)).NoError(t)
		gt.A(t, repos).Length(0)
	})

	t.Run("store failure is persistence error", func(t *testing.T) {
		db := &faultyDB{
			Database:         memory.New(),
			failUpsertCommit: func(c *model.Commit) bool { return true },
		}
		env := newTestEnv(t, infra.WithDatabase(db))

		_, err := env.uc.ApplyPush(env.ctx, newPushInput())
		gt.Error(t, err).Is(types.ErrPersistenceFailed)
	})

	t.Run("concurrent pushes of a new repository create one record", func(t *testing.T) {
		env := newTestEnv(t)

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = env.uc.ApplyPush(env.ctx, newPushInput())
			}()
		}
		wg.Wait()

		for _, err := range errs {
			gt.NoError(t, err)
		}
		repos := gt.R1(env.db.ListRepositories(env.ctx)).NoError(t)
		gt.A(t, repos).Length(1)
	})

	t.Run("losing the creation race adopts the stored repository", func(t *testing.T) {
		db := &racingDB{Database: memory.New()}
		env := newTestEnv(t, infra.WithDatabase(db))

		commits := gt.R1(env.uc.ApplyPush(env.ctx, newPushInput())).NoError(t)
		gt.A(t, commits).Length(1)

		repos := gt.R1(env.db.ListRepositories(env.ctx)).NoError(t)
		gt.A(t, repos).Length(1)
		// ID 1 went to the losing insert and is never reused.
		gt.Equal(t, repos[0].ID, types.RepoID(2))
		gt.Equal(t, *commits[0].RepoID, repos[0].ID)

		next := gt.R1(env.db.NextID(env.ctx, types.SequenceRepository)).NoError(t)
		gt.Equal(t, next, int64(3))
	})
}

func TestApplyPushDelivery(t *testing.T) {
	t.Run("repeated delivery does not write again", func(t *testing.T) {
		db := &faultyDB{Database: memory.New()}
		env := newTestEnv(t, infra.WithDatabase(db), infra.WithDeliveryGuard(dedup.NewMemory(dedup.DefaultTTL)))

		input := newPushInput()
		input.DeliveryID = "delivery-1"
		first := gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.Equal(t, db.upsertCommits, 1)

		second := gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.Equal(t, db.upsertCommits, 1)
		gt.Equal(t, first, second)
	})

	t.Run("failed delivery is released for retry", func(t *testing.T) {
		fail := true
		db := &faultyDB{
			Database:         memory.New(),
			failUpsertCommit: func(c *model.Commit) bool { return fail },
		}
		env := newTestEnv(t, infra.WithDatabase(db), infra.WithDeliveryGuard(dedup.NewMemory(dedup.DefaultTTL)))

		input := newPushInput()
		input.DeliveryID = "delivery-2"
		_, err := env.uc.ApplyPush(env.ctx, input)
		gt.Error(t, err)

		fail = false
		commits := gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.A(t, commits).Length(1)
		gt.Equal(t, db.upsertCommits, 1)
	})

	t.Run("guard failure does not block push", func(t *testing.T) {
		guard := &mock.DeliveryGuardMock{
			ClaimFunc: func(ctx context.Context, id string) (bool, error) {
				return false, errors.New("redis is down")
			},
		}
		env := newTestEnv(t, infra.WithDeliveryGuard(guard))

		input := newPushInput()
		input.DeliveryID = "delivery-3"
		gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.A(t, guard.ClaimCalls()).Length(1)
		gt.A(t, guard.ReleaseCalls()).Length(0)
	})

	t.Run("duplicate delivery with missing commits is processed", func(t *testing.T) {
		guard := &mock.DeliveryGuardMock{
			ClaimFunc: func(ctx context.Context, id string) (bool, error) {
				return false, nil
			},
		}
		env := newTestEnv(t, infra.WithDeliveryGuard(guard))

		input := newPushInput()
		input.DeliveryID = "delivery-4"
		commits := gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.A(t, commits).Length(1)
		gt.R1(env.db.GetCommit(env.ctx, "abc123")).NoError(t)
	})
}

func TestApplyPushSinks(t *testing.T) {
	t.Run("publish event with commits in order", func(t *testing.T) {
		var events []*model.CommitsPushedEvent
		pub := &mock.EventPublisherMock{
			PublishCommitsPushedFunc: func(ctx context.Context, event *model.CommitsPushedEvent) error {
				events = append(events, event)
				return nil
			},
		}
		env := newTestEnv(t, infra.WithEventPublisher(pub))

		input := newPushInput()
		input.Commits = append(input.Commits, &model.PushCommit{SHA: "bbb222", Message: "second"})
		gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)

		gt.A(t, events).Length(1).At(0, func(t testing.TB, v *model.CommitsPushedEvent) {
			gt.Equal(t, v.RepoID, types.RepoID(1))
			gt.Equal(t, v.Branch, "main")
			gt.Equal(t, v.SHAs, []types.CommitSHA{"abc123", "bbb222"})
		})
	})

	t.Run("publish failure does not fail push", func(t *testing.T) {
		pub := &mock.EventPublisherMock{
			PublishCommitsPushedFunc: func(ctx context.Context, event *model.CommitsPushedEvent) error {
				return errors.New("broker unavailable")
			},
		}
		env := newTestEnv(t, infra.WithEventPublisher(pub))

		commits := gt.R1(env.uc.ApplyPush(env.ctx, newPushInput())).NoError(t)
		gt.A(t, commits).Length(1)
	})

	t.Run("export commits to BigQuery", func(t *testing.T) {
		var inserted []any
		bq := &mock.BigQueryMock{
			GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
				return nil, nil
			},
			CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
				return nil
			},
			InsertFunc: func(ctx context.Context, schema bigquery.Schema, rows []any) error {
				inserted = append(inserted, rows...)
				return nil
			},
		}
		env := newTestEnv(t, infra.WithBigQuery(bq))

		gt.R1(env.uc.ApplyPush(env.ctx, newPushInput())).NoError(t)
		gt.A(t, inserted).Length(1).At(0, func(t testing.TB, v any) {
			rec, ok := v.(*model.CommitRawRecord)
			gt.True(t, ok)
			gt.Equal(t, rec.SHA, "abc123")
			gt.Equal(t, rec.RepoName, "foo")
		})
	})

	t.Run("sinks are not called for empty push", func(t *testing.T) {
		pub := &mock.EventPublisherMock{}
		env := newTestEnv(t, infra.WithEventPublisher(pub))

		input := newPushInput()
		input.Commits = nil
		gt.R1(env.uc.ApplyPush(env.ctx, input)).NoError(t)
		gt.A(t, pub.PublishCommitsPushedCalls()).Length(0)
	})
}
