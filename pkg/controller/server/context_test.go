package server_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gittales/pkg/controller/server"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestDetachContext(t *testing.T) {
	logger := slog.Default().With("component", "test")
	fixedTime := time.Date(2024, 12, 25, 10, 30, 0, 0, time.UTC)

	origin, cancel := context.WithCancel(context.Background())
	origin = logging.With(origin, logger)
	reqID, origin := logging.CtxRequestID(origin)
	origin = logging.CtxWithTime(origin, func() time.Time { return fixedTime })

	detached := server.DetachContext(origin)
	cancel()

	t.Run("values are inherited", func(t *testing.T) {
		gt.V(t, logging.From(detached)).Equal(logger)
		got, _ := logging.CtxRequestID(detached)
		gt.V(t, got).Equal(reqID)
		gt.V(t, logging.CtxTime(detached)).Equal(fixedTime)
	})

	t.Run("cancel of origin does not propagate", func(t *testing.T) {
		gt.V(t, origin.Err()).Equal(context.Canceled)
		gt.NoError(t, detached.Err())
	})
}
