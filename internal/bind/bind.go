package bind

import (
	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

// Bind rewrites finished statement in place before execution
type Bind interface {
	RewriteStatement(st *backend.Statement) error
}

type Bindings []Bind

// RewriteStatement applies bindings in order
func (bindings Bindings) RewriteStatement(st *backend.Statement) error {
	for _, b := range bindings {
		if err := b.RewriteStatement(st); err != nil {
			return xerrors.WithStackTrace(err)
		}
	}

	return nil
}

// Func is an adapter to allow the use of ordinary functions as Bind
type Func func(st *backend.Statement) error

func (f Func) RewriteStatement(st *backend.Statement) error {
	return f(st)
}
