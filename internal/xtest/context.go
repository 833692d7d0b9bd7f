package xtest

import (
	"context"
	"runtime/pprof"
	"testing"
)

// Context returns context labeled by test name and cancelled on test cleanup.
// Context of *testing.T is also bounded by the test deadline.
func Context(t testing.TB) context.Context {
	ctx := pprof.WithLabels(context.Background(), pprof.Labels("test", t.Name()))

	var cancel context.CancelFunc
	if tt, ok := t.(*testing.T); ok {
		if deadline, has := tt.Deadline(); has {
			ctx, cancel = context.WithDeadline(ctx, deadline)
		}
	}
	if cancel == nil {
		ctx, cancel = context.WithCancel(ctx)
	}
	t.Cleanup(cancel)

	return ctx
}
