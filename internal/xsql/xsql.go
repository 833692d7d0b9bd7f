package xsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

var errNilDB = errors.New("nil *sql.DB")

// Backend implements backend.Backend over database/sql.
// Every Conn is a dedicated *sql.Conn taken from the pool of db.
type Backend struct {
	db      *sql.DB
	prepare bool
}

var _ backend.Backend = (*Backend)(nil)

func New(db *sql.DB, opts ...Option) (*Backend, error) {
	if db == nil {
		return nil, xerrors.WithStackTrace(errNilDB)
	}
	b := &Backend{
		db:      db,
		prepare: true,
	}
	for _, opt := range opts {
		if opt != nil {
			if err := opt.Apply(b); err != nil {
				return nil, xerrors.WithStackTrace(err)
			}
		}
	}

	return b, nil
}

func (b *Backend) Conn(ctx context.Context) (backend.Conn, error) {
	cc, err := b.db.Conn(ctx)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return &conn{
		cc:      cc,
		prepare: b.prepare,
	}, nil
}
