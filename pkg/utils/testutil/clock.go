package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/gittales/pkg/utils/logging"
)

// Clock is a manually advanced clock injected through logging.CtxWithTime
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (x *Clock) Now() time.Time {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.now
}

func (x *Clock) Advance(d time.Duration) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.now = x.now.Add(d)
}

// Context returns ctx whose logging.CtxTime follows this clock
func (x *Clock) Context(ctx context.Context) context.Context {
	return logging.CtxWithTime(ctx, x.Now)
}
