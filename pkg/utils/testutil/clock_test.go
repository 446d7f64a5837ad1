package testutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gittales/pkg/utils/logging"
	"github.com/m-mizutani/gittales/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestClock(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := testutil.NewClock(base)
	ctx := clock.Context(context.Background())

	gt.V(t, logging.CtxTime(ctx)).Equal(base)

	clock.Advance(15 * time.Minute)
	gt.V(t, logging.CtxTime(ctx)).Equal(base.Add(15 * time.Minute))
}
