package xsql

import (
	"database/sql"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

type conn struct {
	cc      *sql.Conn
	prepare bool
}

var _ backend.Conn = (*conn)(nil)

func (c *conn) Command() backend.Command {
	return &command{
		conn:      c,
		statement: &backend.Statement{},
	}
}

// Close returns connection to the pool of *sql.DB
func (c *conn) Close() error {
	if err := c.cc.Close(); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}
