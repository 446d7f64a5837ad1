package server

import (
	"context"
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/model"
	"github.com/m-mizutani/gittales/pkg/utils/logging"
)

// DetachContext creates a new context.Background() based context that inherits
// logger, request ID and clock from the original context. Writes that must not
// stop halfway when the client disconnects run with it.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := context.Background()

	bgCtx = logging.With(bgCtx, logging.From(ctx))

	reqID, _ := logging.CtxRequestID(ctx)
	bgCtx = logging.WithRequestID(bgCtx, reqID)

	bgCtx = logging.CtxWithTime(bgCtx, func() time.Time {
		return logging.CtxTime(ctx)
	})

	return bgCtx
}

type ctxTokenPayloadKey struct{}

func withTokenPayload(ctx context.Context, payload *model.TokenPayload) context.Context {
	return context.WithValue(ctx, ctxTokenPayloadKey{}, payload)
}

func tokenPayloadFrom(ctx context.Context) *model.TokenPayload {
	if v, ok := ctx.Value(ctxTokenPayloadKey{}).(*model.TokenPayload); ok {
		return v
	}
	return nil
}
