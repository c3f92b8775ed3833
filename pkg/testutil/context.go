package testutil

import (
	"context"
	"time"

	"gmarm/pkg/requestcontext"
)

// FixedNow returns a context whose request time is now. Rule code reads
// "today" from the context, so tests pin it here.
func FixedNow(now time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), now)
}
