package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/gittales/pkg/utils/signature"
	"github.com/m-mizutani/goerr/v2"
)

const (
	headerSignature = "X-Hub-Signature-256"
	headerDelivery  = "X-GitHub-Delivery"
)

type webhookResponse struct {
	Message        string          `json:"message"`
	SavedCommits   []*model.Commit `json:"savedCommits"`
	CommitMessages []string        `json:"commitMessages"`
}

func (x *Server) handleGitWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, bodyError(err))
		return
	}

	if !signature.Verify(body, r.Header.Get(headerSignature), x.cfg.webhookSecret) {
		writeError(w, r, goerr.Wrap(types.ErrUnauthorized, "invalid webhook signature"))
		return
	}

	deliveryID := r.Header.Get(headerDelivery)
	eventType := github.WebHookType(r)
	logger := logging.From(ctx).With(
		slog.String("event", eventType),
		slog.String("delivery_id", deliveryID),
	)

	switch eventType {
	case "ping":
		writeJSON(w, http.StatusOK, map[string]string{"message": "pong"})
		return
	case "push", "":
		// An event without the header is handled as push
		eventType = "push"
	default:
		logger.Info("Ignored webhook event")
		writeJSON(w, http.StatusOK, map[string]string{"message": "event ignored"})
		return
	}

	event, err := github.ParseWebHook(eventType, body)
	if err != nil {
		writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "failed to parse push event", goerr.V("error", err.Error())))
		return
	}
	push, ok := event.(*github.PushEvent)
	if !ok {
		writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "unexpected event payload"))
		return
	}

	input := pushEventToInput(push, deliveryID)
	logger.Info("Received push event",
		slog.Int64("git_repo_id", int64(input.Repository.GitRepoID)),
		slog.String("ref", input.Ref),
		slog.Int("commits", len(input.Commits)),
	)

	// Commits are upserted one by one, so the push is not cut off by a client
	// disconnect
	commits, err := x.uc.ApplyPush(DetachContext(ctx), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	messages := make([]string, 0, len(commits))
	for _, c := range commits {
		messages = append(messages, c.Message)
	}

	writeJSON(w, http.StatusOK, &webhookResponse{
		Message:        "Webhook received and processed successfully",
		SavedCommits:   commits,
		CommitMessages: messages,
	})
}

func pushEventToInput(ev *github.PushEvent, deliveryID string) *model.PushInput {
	repo := ev.GetRepo()
	owner := repo.GetOwner()

	ownerLogin := owner.GetLogin()
	if ownerLogin == "" {
		ownerLogin = owner.GetName()
	}

	input := &model.PushInput{
		DeliveryID: deliveryID,
		Repository: model.PushRepository{
			GitRepoID:   types.GitHubRepoID(repo.GetID()),
			Name:        repo.GetName(),
			Link:        repo.GetHTMLURL(),
			Description: repo.GetDescription(),
			Language:    repo.GetLanguage(),
			OwnerID:     owner.GetID(),
			OwnerLogin:  ownerLogin,
			OwnerLink:   owner.GetHTMLURL(),
		},
		Sender: model.PushSender{
			Login:     ev.GetSender().GetLogin(),
			AvatarURL: ev.GetSender().GetAvatarURL(),
		},
		Compare: ev.GetCompare(),
		Ref:     ev.GetRef(),
		Commits: make([]*model.PushCommit, 0, len(ev.Commits)),
	}

	for _, c := range ev.Commits {
		author := c.GetAuthor().GetLogin()
		if author == "" {
			author = c.GetAuthor().GetName()
		}

		input.Commits = append(input.Commits, &model.PushCommit{
			SHA:       types.CommitSHA(c.GetID()),
			TreeID:    c.GetTreeID(),
			Message:   c.GetMessage(),
			URL:       c.GetURL(),
			Author:    author,
			Timestamp: c.GetTimestamp().Time,
			Added:     c.Added,
			Removed:   c.Removed,
			Modified:  c.Modified,
		})
	}

	return input
}
