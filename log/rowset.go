package log

import (
	"context"
	"fmt"
	"time"

	"github.com/ydb-platform/ydb-go-rowset/trace"
)

const maskedValue = "<hidden>"

// Rowset makes trace.Rowset with logging events from details
func Rowset(l Logger, d trace.Detailer, opts ...Option) (t trace.Rowset) {
	return internalRowset(wrapLogger(l, opts...), d)
}

//nolint:funlen
func internalRowset(l *wrapper, d trace.Detailer) (t trace.Rowset) {
	t.OnExecute = func(info trace.RowsetExecuteStartInfo) func(trace.RowsetExecuteDoneInfo) {
		if d.Details()&trace.RowsetExecutorEvents == 0 {
			return nil
		}
		ctx := with(*info.Context, TRACE, "rowset", "executor", "execute")
		l.Log(ctx, "start",
			appendFieldByCondition(l.logQuery,
				String("query", info.Query),
				Int("params", info.Params),
			)...,
		)
		start := l.clock.Now()

		return func(info trace.RowsetExecuteDoneInfo) {
			if info.Error == nil {
				l.Log(WithLevel(ctx, DEBUG), "done",
					l.latencyField(start),
				)
			} else {
				// failed stage is logged with ERROR by its own event
				l.Log(WithLevel(ctx, WARN), "failed",
					Error(info.Error),
					l.latencyField(start),
				)
			}
		}
	}
	t.OnConnOpen = func(info trace.RowsetConnOpenStartInfo) func(trace.RowsetConnOpenDoneInfo) {
		if d.Details()&trace.RowsetResourceEvents == 0 {
			return nil
		}
		ctx := with(*info.Context, TRACE, "rowset", "conn", "open")
		l.Log(ctx, "start")
		start := l.clock.Now()

		return func(info trace.RowsetConnOpenDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "done",
					l.latencyField(start),
				)
			} else {
				l.Log(WithLevel(ctx, ERROR), "failed",
					Error(info.Error),
					l.latencyField(start),
				)
			}
		}
	}
	t.OnParamResolve = func(info trace.RowsetParamResolveStartInfo) func(trace.RowsetParamResolveDoneInfo) {
		if d.Details()&trace.RowsetParamEvents == 0 {
			return nil
		}
		ctx := with(*info.Context, TRACE, "rowset", "param", "resolve")
		name := info.Name
		deferred := info.Deferred

		return func(info trace.RowsetParamResolveDoneInfo) {
			if info.Error == nil {
				l.Log(WithLevel(ctx, DEBUG), "resolved",
					String("name", name),
					Bool("deferred", deferred),
					l.paramValueField(info.Value),
				)
			} else {
				l.Log(WithLevel(ctx, ERROR), "param producer failed",
					String("name", name),
					Error(info.Error),
				)
			}
		}
	}
	t.OnCommandExecute = func(info trace.RowsetCommandExecuteStartInfo) func(trace.RowsetCommandExecuteDoneInfo) {
		if d.Details()&trace.RowsetExecutorEvents == 0 {
			return nil
		}
		ctx := with(*info.Context, TRACE, "rowset", "command", "execute")
		query := info.Query
		l.Log(ctx, "start",
			appendFieldByCondition(l.logQuery,
				String("query", query),
			)...,
		)
		start := l.clock.Now()

		return func(info trace.RowsetCommandExecuteDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "done",
					Int("fields", info.FieldCount),
					l.latencyField(start),
				)
			} else {
				l.Log(WithLevel(ctx, ERROR), "failed",
					appendFieldByCondition(l.logQuery,
						String("query", query),
						Error(info.Error),
						l.latencyField(start),
					)...,
				)
			}
		}
	}
	t.OnRelease = func(info trace.RowsetReleaseStartInfo) func(trace.RowsetReleaseDoneInfo) {
		if d.Details()&trace.RowsetResourceEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "rowset", "resources", "release")
		l.Log(ctx, "start")
		start := l.clock.Now()

		return func(info trace.RowsetReleaseDoneInfo) {
			if info.Error == nil {
				l.Log(ctx, "done",
					l.latencyField(start),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "failed",
					Error(info.Error),
					l.latencyField(start),
				)
			}
		}
	}
	t.OnRowsOpen = func(info trace.RowsetRowsOpenStartInfo) func(trace.RowsetRowsOpenDoneInfo) {
		if d.Details()&trace.RowsetRowsEvents == 0 {
			return nil
		}
		ctx := with(*info.Context, TRACE, "rowset", "rows", "open")
		id := info.ID
		l.Log(ctx, "start",
			appendFieldByCondition(l.logQuery,
				String("query", info.Query),
				String("id", id),
				Bool("group_by", info.GroupBy),
			)...,
		)
		start := l.clock.Now()

		return func(info trace.RowsetRowsOpenDoneInfo) {
			if info.Error == nil {
				l.Log(WithLevel(ctx, DEBUG), "opened",
					String("id", id),
					l.latencyField(start),
				)
			} else {
				// failed stage is logged with ERROR by its own event
				l.Log(WithLevel(ctx, WARN), "failed",
					String("id", id),
					Error(info.Error),
					l.latencyField(start),
				)
			}
		}
	}
	t.OnRowsClose = func(info trace.RowsetRowsCloseStartInfo) func(trace.RowsetRowsCloseDoneInfo) {
		if d.Details()&trace.RowsetRowsEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "rowset", "rows", "close")
		var (
			id        = info.ID
			rows      = info.Rows
			exhausted = info.Exhausted
		)
		l.Log(ctx, "start",
			String("id", id),
		)
		start := l.clock.Now()

		return func(info trace.RowsetRowsCloseDoneInfo) {
			if info.Error == nil {
				l.Log(WithLevel(ctx, DEBUG), "closed",
					String("id", id),
					Int("rows", rows),
					Bool("exhausted", exhausted),
					l.latencyField(start),
				)
			} else {
				l.Log(WithLevel(ctx, WARN), "failed",
					String("id", id),
					Int("rows", rows),
					Bool("exhausted", exhausted),
					Error(info.Error),
					l.latencyField(start),
				)
			}
		}
	}
	t.OnRowSkip = func(info trace.RowsetRowSkipInfo) {
		if d.Details()&trace.RowsetRowEvents == 0 {
			return
		}
		ctx := with(context.Background(), DEBUG, "rowset", "row", "skip")
		l.Log(ctx, "zero-column row skipped",
			String("id", info.ID),
			Int("index", info.Index),
		)
	}
	t.OnIdentity = func(info trace.RowsetIdentityInfo) {
		if d.Details()&trace.RowsetIdentityEvents == 0 {
			return
		}
		ctx := with(context.Background(), TRACE, "rowset", "identity")
		l.Log(ctx, "reconciled",
			String("id", info.ID),
			Bool("hit", info.Hit),
		)
	}

	return t
}

func (l *wrapper) latencyField(start time.Time) Field {
	return Duration("latency", l.clock.Since(start))
}

func (l *wrapper) paramValueField(v any) Field {
	if !l.logQuery {
		return String("value", maskedValue)
	}

	return String("value", fmt.Sprintf("%v", v))
}
