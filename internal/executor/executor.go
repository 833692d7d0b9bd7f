package executor

import (
	"context"
	"errors"
	"sync"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/bind"
	"github.com/ydb-platform/ydb-go-rowset/internal/params"
	"github.com/ydb-platform/ydb-go-rowset/internal/stack"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
	"github.com/ydb-platform/ydb-go-rowset/query"
	"github.com/ydb-platform/ydb-go-rowset/trace"
)

var errNilBackend = errors.New("nil backend")

// Query is an immutable execution context of one Rows
type Query struct {
	Text     string
	Params   *params.Parameters
	Backend  backend.Backend
	Mapping  *query.MappingContext
	Bindings bind.Bindings
	Trace    *trace.Rowset
}

func (q *Query) tracer() *trace.Rowset {
	if q.Trace == nil {
		return &trace.Rowset{}
	}

	return q.Trace
}

// Resources owns connection, command and cursor of executed query
type Resources struct {
	trace   *trace.Rowset
	conn    backend.Conn
	command backend.Command
	cursor  backend.Cursor
	release func() error
}

func newResources(t *trace.Rowset) *Resources {
	r := &Resources{
		trace: t,
	}
	r.release = sync.OnceValue(r.close)

	return r
}

// Release closes cursor, command and connection in that order.
// Only the first call closes, next calls return the same result.
func (r *Resources) Release() error {
	if r == nil {
		return nil
	}

	return r.release()
}

func (r *Resources) close() (finalErr error) {
	onDone := trace.RowsetOnRelease(r.trace,
		stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/executor.(*Resources).Release"),
	)
	defer func() {
		onDone(finalErr)
	}()

	var errs []error
	if r.cursor != nil {
		errs = append(errs, r.cursor.Close())
	}
	if r.command != nil {
		errs = append(errs, r.command.Close())
	}
	if r.conn != nil {
		errs = append(errs, r.conn.Close())
	}

	return xerrors.Join(errs...)
}

// Execute opens connection, builds command with resolved params and executes it.
// On success cursor is positioned before the first row and Resources must be released by caller.
// On failure all acquired resources are released before return. Error of params producer
// is returned as is.
func Execute(ctx context.Context, q *Query) (_ backend.Cursor, _ *Resources, finalErr error) {
	t := q.tracer()
	onDone := trace.RowsetOnExecute(t, &ctx,
		stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/executor.Execute"),
		q.Text, q.Params.Count(),
	)
	defer func() {
		onDone(finalErr)
	}()

	if q.Backend == nil {
		return nil, nil, xerrors.WithStackTrace(errNilBackend)
	}

	text, err := q.Mapping.GenerateSQL(q.Text)
	if err != nil {
		// already wrapped by the failed hook call site
		return nil, nil, err
	}

	r := newResources(t)

	r.conn, err = connect(ctx, t, q.Backend)
	if err != nil {
		return nil, nil, xerrors.WithStackTrace(err)
	}

	r.command = r.conn.Command()
	st := r.command.Statement()
	st.Text = text

	if err = resolveParams(ctx, t, q.Params, st); err != nil {
		_ = r.Release()

		return nil, nil, err
	}

	if err = q.Bindings.RewriteStatement(st); err != nil {
		_ = r.Release()

		return nil, nil, xerrors.WithStackTrace(err)
	}

	cursor, err := executeCommand(ctx, t, r.command)
	if err != nil {
		_ = r.Release()

		return nil, nil, xerrors.WithStackTrace(err)
	}
	r.cursor = cursor

	return cursor, r, nil
}

func connect(ctx context.Context, t *trace.Rowset, b backend.Backend) (_ backend.Conn, finalErr error) {
	onDone := trace.RowsetOnConnOpen(t, &ctx,
		stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/executor.connect"),
	)
	defer func() {
		onDone(finalErr)
	}()

	conn, err := b.Conn(ctx)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return conn, nil
}

// resolveParams appends one param per binding. Deferred values are produced here.
func resolveParams(ctx context.Context, t *trace.Rowset, ps *params.Parameters, st *backend.Statement) error {
	if ps == nil {
		return nil
	}
	for _, p := range *ps {
		onDone := trace.RowsetOnParamResolve(t, &ctx,
			stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/executor.resolveParams"),
			p.Name(), p.IsDeferred(),
		)
		value, err := p.Resolve()
		onDone(value, err)
		if err != nil {
			return err
		}
		st.AddParam(p.Name(), value)
	}

	return nil
}

func executeCommand(ctx context.Context, t *trace.Rowset, cmd backend.Command) (backend.Cursor, error) {
	onDone := trace.RowsetOnCommandExecute(t, &ctx,
		stack.FunctionID("github.com/ydb-platform/ydb-go-rowset/internal/executor.executeCommand"),
		cmd.Statement().Text,
	)

	cursor, err := cmd.Execute(ctx)
	if err != nil {
		onDone(0, err)

		return nil, xerrors.WithStackTrace(err)
	}
	onDone(cursor.FieldCount(), nil)

	return cursor, nil
}
