package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

func parseIDParam(r *http.Request, name string) (int64, error) {
	v := chi.URLParam(r, name)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, goerr.Wrap(types.ErrValidationFailed, "invalid ID in path", goerr.V(name, v))
	}
	return id, nil
}

func (x *Server) handleListRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := x.uc.ListRepositories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if repos == nil {
		repos = []*model.Repository{}
	}
	writeJSON(w, http.StatusOK, repos)
}

func (x *Server) handleListRepositoryCommits(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "repoID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	commits, err := x.uc.ListRepositoryCommits(r.Context(), types.RepoID(id))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if commits == nil {
		commits = []*model.Commit{}
	}
	writeJSON(w, http.StatusOK, commits)
}

func (x *Server) handleSyncPullRequests(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	repo := chi.URLParam(r, "repo")

	// Pull requests stored before a disconnect are kept anyway, so the sync
	// runs to completion
	prs, err := x.uc.SyncPullRequests(DetachContext(r.Context()), owner, repo)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if prs == nil {
		prs = []*model.PullRequest{}
	}
	writeJSON(w, http.StatusOK, prs)
}

func (x *Server) handleGetPullRequest(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "prID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	pr, err := x.uc.GetPullRequestWithCommits(r.Context(), types.PullRequestID(id))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pr)
}
