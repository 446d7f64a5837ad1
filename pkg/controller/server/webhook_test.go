package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gittales/pkg/controller/server"
	"github.com/m-mizutani/gittales/pkg/domain/mock"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/signature"
	"github.com/m-mizutani/gt"
)

const pushPayload = `{
  "ref": "refs/heads/main",
  "compare": "https://github.com/octo/foo/compare/000000...abc123",
  "repository": {
    "id": 42,
    "name": "foo",
    "html_url": "https://github.com/octo/foo",
    "description": "test repository",
    "language": "Go",
    "owner": {"id": 1, "login": "octo", "name": "octo", "html_url": "https://github.com/octo"}
  },
  "sender": {"login": "octocat", "avatar_url": "https://avatars.example.com/u/1"},
  "commits": [
    {
      "id": "abc123",
      "tree_id": "tree123",
      "message": "init",
      "url": "https://github.com/octo/foo/commit/abc123",
      "timestamp": "2024-05-01T12:00:00Z",
      "author": {"name": "Octo Cat", "email": "octo@example.com", "username": "octocat"},
      "added": ["README.md"],
      "removed": [],
      "modified": []
    }
  ]
}`

func postWebhook(t *testing.T, srv *server.Server, event, delivery, payload string, mods ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/events/git-webhooks", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Hub-Signature-256", signature.Sign([]byte(payload), testSecret))
	if event != "" {
		req.Header.Set("X-GitHub-Event", event)
	}
	if delivery != "" {
		req.Header.Set("X-GitHub-Delivery", delivery)
	}
	for _, mod := range mods {
		mod(req)
	}

	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, req)
	return w
}

func TestGitWebhook(t *testing.T) {
	t.Run("push is stored", func(t *testing.T) {
		srv := newTestServer(t)
		w := postWebhook(t, srv, "push", "delivery-1", pushPayload)
		gt.V(t, w.Code).Equal(http.StatusOK)

		var resp struct {
			Message        string          `json:"message"`
			SavedCommits   []*model.Commit `json:"savedCommits"`
			CommitMessages []string        `json:"commitMessages"`
		}
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		gt.V(t, resp.CommitMessages).Equal([]string{"init"})
		gt.A(t, resp.SavedCommits).Length(1).At(0, func(t testing.TB, v *model.Commit) {
			gt.V(t, v.SHA).Equal(types.CommitSHA("abc123"))
			gt.V(t, *v.RepoID).Equal(types.RepoID(1))
			gt.V(t, v.Branch).Equal("main")
			gt.V(t, v.Author).Equal("octocat")
			gt.V(t, v.SenderAvatar).Equal("https://avatars.example.com/u/1")
			gt.V(t, v.Added).Equal([]string{"README.md"})
			gt.Nil(t, v.Haiku)
		})
	})

	t.Run("redelivery returns the same commits", func(t *testing.T) {
		srv := newTestServer(t)
		first := postWebhook(t, srv, "push", "delivery-2", pushPayload)
		second := postWebhook(t, srv, "push", "delivery-2", pushPayload)
		gt.V(t, second.Code).Equal(http.StatusOK)
		gt.V(t, second.Body.String()).Equal(first.Body.String())
	})

	t.Run("invalid signature is rejected before processing", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newMockServer(t, uc)

		w := postWebhook(t, srv, "push", "", pushPayload, func(r *http.Request) {
			r.Header.Set("X-Hub-Signature-256", signature.Sign([]byte(pushPayload), "other-secret"))
		})
		gt.V(t, w.Code).Equal(http.StatusUnauthorized)
		gt.V(t, decodeError(t, w).Code).Equal("UNAUTHORIZED")
		gt.A(t, uc.ApplyPushCalls()).Length(0)
	})

	t.Run("missing signature", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newMockServer(t, uc)

		w := postWebhook(t, srv, "push", "", pushPayload, func(r *http.Request) {
			r.Header.Del("X-Hub-Signature-256")
		})
		gt.V(t, w.Code).Equal(http.StatusUnauthorized)
		gt.A(t, uc.ApplyPushCalls()).Length(0)
	})

	t.Run("ping", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newMockServer(t, uc)

		w := postWebhook(t, srv, "ping", "", `{"zen":"Keep it logically awesome."}`)
		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.True(t, strings.Contains(w.Body.String(), "pong"))
	})

	t.Run("other events are ignored", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newMockServer(t, uc)

		w := postWebhook(t, srv, "issues", "", `{"action":"opened"}`)
		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.A(t, uc.ApplyPushCalls()).Length(0)
	})

	t.Run("payload without event header is handled as push", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ApplyPushFunc: func(ctx context.Context, input *model.PushInput) ([]*model.Commit, error) {
				return []*model.Commit{}, nil
			},
		}
		srv := newMockServer(t, uc)

		w := postWebhook(t, srv, "", "delivery-3", pushPayload)
		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.A(t, uc.ApplyPushCalls()).Length(1).At(0, func(t testing.TB, v struct {
			Ctx   context.Context
			Input *model.PushInput
		}) {
			gt.V(t, v.Input.DeliveryID).Equal("delivery-3")
			gt.V(t, v.Input.Repository.GitRepoID).Equal(types.GitHubRepoID(42))
			gt.V(t, v.Input.Repository.OwnerLogin).Equal("octo")
			gt.V(t, v.Input.Commits[0].Timestamp.Year()).Equal(2024)
		})
	})

	t.Run("push without repository id", func(t *testing.T) {
		srv := newTestServer(t)
		payload := `{"ref":"refs/heads/main","repository":{"name":"foo"},"commits":[]}`

		w := postWebhook(t, srv, "push", "", payload)
		gt.V(t, w.Code).Equal(http.StatusBadRequest)
		gt.V(t, decodeError(t, w).Code).Equal("VALIDATION_FAILED")
	})

	t.Run("broken JSON", func(t *testing.T) {
		srv := newTestServer(t)
		w := postWebhook(t, srv, "push", "", `{"ref":`)
		gt.V(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("body over limit", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := newMockServer(t, uc, server.WithBodyLimit(16))

		w := postWebhook(t, srv, "push", "", pushPayload)
		gt.V(t, w.Code).Equal(http.StatusRequestEntityTooLarge)
		gt.A(t, uc.ApplyPushCalls()).Length(0)
	})
}

func TestGitWebhookSignedBodyIsRaw(t *testing.T) {
	// a semantically equal but re-encoded body must not verify
	srv := newMockServer(t, &mock.UseCaseMock{})

	var v any
	gt.NoError(t, json.Unmarshal([]byte(pushPayload), &v))
	compact := gt.R1(json.Marshal(v)).NoError(t)

	req := httptest.NewRequest(http.MethodPost, "/events/git-webhooks", bytes.NewReader(compact))
	req.Header.Set("X-GitHub-Event", "push")
	req.Header.Set("X-Hub-Signature-256", signature.Sign([]byte(pushPayload), testSecret))
	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, req)
	gt.V(t, w.Code).Equal(http.StatusUnauthorized)
}
