package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/resona/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// SystemClock implements domain.CurrentTimeProvider with the wall clock.
// Times are UTC and truncated to milliseconds, the precision events carry on the wire.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// InitCurrentTimeProvider registers the SystemClock.
type InitCurrentTimeProvider struct{}

func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](SystemClock{})
	return ctx, nil
}
