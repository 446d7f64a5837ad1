package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/gittales/pkg/utils/errutil"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var errPayloadTooLarge = goerr.New("payload too large")

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

type errorKind struct {
	err     error
	status  int
	code    string
	message string
}

// errorKinds is checked in order. The first match wins.
var errorKinds = []errorKind{
	{types.ErrValidationFailed, http.StatusBadRequest, "VALIDATION_FAILED", ""},
	{errPayloadTooLarge, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body is too large"},
	{types.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"},
	{types.ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED", "token has expired"},
	{types.ErrTokenInvalid, http.StatusUnauthorized, "INVALID_TOKEN", "token is invalid"},
	{types.ErrTokenVerificationFailed, http.StatusUnauthorized, "TOKEN_VERIFICATION_FAILED", "token verification failed"},
	{types.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND", "user not found"},
	{types.ErrRepositoryNotFound, http.StatusNotFound, "REPOSITORY_NOT_FOUND", "repository not found"},
	{types.ErrPullRequestNotFound, http.StatusNotFound, "PULL_REQUEST_NOT_FOUND", "pull request not found"},
	{types.ErrConflict, http.StatusConflict, "EMAIL_TAKEN", "email is already registered"},
	{types.ErrUpstreamFailure, http.StatusBadGateway, "UPSTREAM_FAILURE", "GitHub API request failed"},
	{types.ErrPersistenceFailed, http.StatusInternalServerError, "PERSISTENCE_FAILED", "failed to access data store"},
}

var internalError = errorKind{
	status:  http.StatusInternalServerError,
	code:    "INTERNAL_ERROR",
	message: "internal server error",
}

func classifyError(err error) errorKind {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.err) {
			return kind
		}
	}
	return internalError
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"statusCode":500,"code":"INTERNAL_ERROR","message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorKind(w, r, classifyError(err), err)
}

// writeTokenError writes token errors with a code naming the token kind, e.g.
// ACCESS_TOKEN_EXPIRED
func writeTokenError(w http.ResponseWriter, r *http.Request, kind types.TokenKind, err error) {
	prefix := "ACCESS"
	if kind == types.RefreshToken {
		prefix = "REFRESH"
	}

	ek := classifyError(err)
	switch {
	case errors.Is(err, types.ErrTokenExpired):
		ek.code = prefix + "_TOKEN_EXPIRED"
	case errors.Is(err, types.ErrTokenInvalid):
		ek.code = "INVALID_" + prefix + "_TOKEN"
	}
	writeErrorKind(w, r, ek, err)
}

func writeErrorKind(w http.ResponseWriter, r *http.Request, ek errorKind, err error) {
	ctx := r.Context()

	msg := ek.message
	if ek.status == http.StatusBadRequest {
		msg = err.Error()
	}

	if ek.status >= http.StatusInternalServerError {
		errutil.HandleError(ctx, "request failed", err)
	} else {
		logging.From(ctx).Warn("request rejected",
			slog.Int("status_code", ek.status),
			slog.String("code", ek.code),
			slog.Any("error", err),
		)
	}

	writeJSON(w, ek.status, &errorResponse{
		StatusCode: ek.status,
		Code:       ek.code,
		Message:    msg,
	})
}

// decodeJSON reads a JSON request body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return bodyError(err)
	}
	return nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return goerr.Wrap(errPayloadTooLarge, "request body exceeds limit", goerr.V("limit", maxErr.Limit))
	}
	return goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("error", err.Error()))
}
