package errutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleError reports err to Sentry and logs it with the Sentry event ID.
// Cancellation by the caller is only logged. A nil err is ignored.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Warn(msg, slog.Any("error", err))
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		reqID, _ := logging.CtxRequestID(ctx)
		scope.SetTag("request_id", string(reqID))
		scope.SetContext("gittales", sentryContext(msg, err))
	})
	evID := hub.CaptureException(err)

	logger.Error(msg,
		slog.Any("error", err),
		slog.Any("sentry.EventID", evID),
	)
}

func sentryContext(msg string, err error) sentry.Context {
	c := sentry.Context{"message": msg}
	if goErr := goerr.Unwrap(err); goErr != nil {
		for k, v := range goErr.Values() {
			c[fmt.Sprintf("%v", k)] = v
		}
	}
	return c
}
