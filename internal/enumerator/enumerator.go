package enumerator

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/executor"
	"github.com/ydb-platform/ydb-go-rowset/internal/stack"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
	"github.com/ydb-platform/ydb-go-rowset/internal/xiter"
	"github.com/ydb-platform/ydb-go-rowset/internal/xreflect"
	"github.com/ydb-platform/ydb-go-rowset/query"
	"github.com/ydb-platform/ydb-go-rowset/trace"
)

type state int

const (
	stateUnstarted = state(iota)
	stateOpen
	stateExhausted
	stateClosed
	stateFailed
)

var _ query.Rows[any] = (*Enumerator[any])(nil)

// Enumerator is a pull-based state machine over the cursor of one query execution.
// Resources are acquired on the first Next and released once on exhaustion, Close or failure.
type Enumerator[T any] struct {
	vars    *Vars[T]
	mapper  query.Mapper[T]
	cache   query.IdentityCache[T]
	trace   *trace.Rowset
	groupBy bool
	id      string

	state     state
	err       error
	cursor    backend.Cursor
	resources *executor.Resources
	attached  map[any]struct{} // keys of instances passed to attach hook
	index     int              // cursor rows read including skipped
	rows      int              // values returned
}

// New makes Enumerator. The mapper is resolved here once, a nil mapper fails the first Next.
// Cache may be nil.
func New[T any](vars *Vars[T], cache query.IdentityCache[T]) *Enumerator[T] {
	e := &Enumerator[T]{
		vars:  vars,
		trace: vars.Query.Trace,
		id:    uuid.NewString(),
	}
	if e.trace == nil {
		e.trace = &trace.Rowset{}
	}
	if cache != nil && !xreflect.IsNil(cache) {
		e.cache = cache
	}
	if vars.Resolver != nil && !xreflect.IsNil(vars.Resolver) {
		e.mapper = vars.Resolver.Mapper(vars.Query.Text, vars.Query.Mapping)
	}

	return e
}

// NewGroupBy makes Enumerator over aggregated rows
func NewGroupBy[T any](vars *Vars[T], cache query.IdentityCache[T]) *Enumerator[T] {
	e := New(vars, cache)
	e.groupBy = true

	return e
}

func (e *Enumerator[T]) QueryText() string {
	return e.vars.Query.Text
}

func (e *Enumerator[T]) IsGroupBy() bool {
	return e.groupBy
}

// Next returns the next value or io.EOF after the last one.
// Enumerator is not restartable: after the end Next keeps returning io.EOF,
// after Close it returns ErrClosed and after a failure the same failure.
func (e *Enumerator[T]) Next(ctx context.Context) (value T, _ error) {
	switch e.state {
	case stateExhausted:
		return value, xerrors.WithStackTrace(io.EOF)
	case stateClosed:
		return value, xerrors.WithStackTrace(ErrClosed)
	case stateFailed:
		return value, e.err
	case stateUnstarted:
		if err := e.open(ctx); err != nil {
			return value, e.fail(err)
		}
	}

	for {
		if !e.cursor.Next() {
			if err := e.cursor.Err(); err != nil {
				return value, e.fail(xerrors.WithStackTrace(err))
			}
			if err := e.finish(stateExhausted); err != nil {
				e.state, e.err = stateFailed, xerrors.WithStackTrace(err)

				return value, e.err
			}

			return value, xerrors.WithStackTrace(io.EOF)
		}

		index := e.index
		e.index++

		// some drivers report phantom rows without fields
		if e.cursor.FieldCount() == 0 {
			trace.RowsetOnRowSkip(e.trace,
				stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/enumerator.(*Enumerator).Next"),
				e.id, index,
			)

			continue
		}

		v, err := e.mapper(e.cursor, e.vars.Query.Mapping)
		if err != nil {
			return value, e.fail(xerrors.WithStackTrace(err))
		}
		e.rows++

		return e.reconcile(v), nil
	}
}

// Range returns iterator over values. The iteration stops on io.EOF silently
// and yields the last pair with non-nil error on failure. Breaking the loop closes Enumerator.
func (e *Enumerator[T]) Range(ctx context.Context) xiter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer func() {
			_ = e.Close(ctx)
		}()

		for {
			v, err := e.Next(ctx)
			if err != nil {
				if err = xerrors.HideEOF(err); err != nil {
					yield(v, err)
				}

				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Close releases resources of unfinished enumeration. Close of finished Enumerator is no-op.
func (e *Enumerator[T]) Close(context.Context) error {
	switch e.state {
	case stateUnstarted:
		e.state = stateClosed

		return nil
	case stateOpen:
		if err := e.finish(stateClosed); err != nil {
			return xerrors.WithStackTrace(err)
		}

		return nil
	default:
		return nil
	}
}

func (e *Enumerator[T]) open(ctx context.Context) (finalErr error) {
	if e.vars.Err != nil {
		return e.vars.Err
	}
	if e.mapper == nil {
		return xerrors.WithStackTrace(ErrMissingMapper)
	}

	onDone := trace.RowsetOnRowsOpen(e.trace, &ctx,
		stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/enumerator.(*Enumerator).open"),
		e.id, e.vars.Query.Text, e.groupBy,
	)
	defer func() {
		onDone(finalErr)
	}()

	cursor, resources, err := executor.Execute(ctx, e.vars.Query)
	if err != nil {
		// params producer error must reach the caller as is
		return err
	}
	e.state, e.cursor, e.resources = stateOpen, cursor, resources

	return nil
}

// fail moves Enumerator to failed state. Release error is traced only, err is returned.
func (e *Enumerator[T]) fail(err error) error {
	_ = e.finish(stateFailed)
	e.err = err

	return err
}

// finish moves Enumerator to terminal state and releases resources if they are opened
func (e *Enumerator[T]) finish(s state) (finalErr error) {
	prev := e.state
	e.state = s
	if prev != stateOpen {
		return nil
	}

	onDone := trace.RowsetOnRowsClose(e.trace,
		stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/enumerator.(*Enumerator).finish"),
		e.id, e.rows, s == stateExhausted,
	)
	defer func() {
		onDone(finalErr)
	}()

	resources := e.resources
	e.cursor, e.resources = nil, nil

	return resources.Release()
}

// reconcile returns the canonical instance of v from identity cache.
// Attach is called once for every distinct instance yielded by this Enumerator,
// including instances taken from the cache.
func (e *Enumerator[T]) reconcile(v T) T {
	if e.cache == nil || xreflect.IsNil(v) {
		return v
	}

	cached, hit := e.cache.Load(v)
	trace.RowsetOnIdentity(e.trace,
		stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/enumerator.(*Enumerator).reconcile"),
		e.id, hit,
	)
	if hit {
		v = cached
	}
	if e.vars.Attach != nil {
		key := e.cache.Key(v)
		if _, has := e.attached[key]; !has {
			if e.attached == nil {
				e.attached = make(map[any]struct{})
			}
			e.attached[key] = struct{}{}
			e.vars.Attach(v)
		}
	}
	e.cache.Store(v)

	return v
}
