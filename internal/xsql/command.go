package xsql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

type command struct {
	conn      *conn
	statement *backend.Statement
	stmt      *sql.Stmt
}

var _ backend.Command = (*command)(nil)

func (c *command) Statement() *backend.Statement {
	return c.statement
}

func (c *command) Execute(ctx context.Context) (_ backend.Cursor, err error) {
	var (
		args = toArgs(c.statement.Params)
		rows *sql.Rows
	)
	if c.conn.prepare {
		c.stmt, err = c.conn.cc.PrepareContext(ctx, c.statement.Text)
		if err != nil {
			return nil, xerrors.WithStackTrace(err)
		}
		rows, err = c.stmt.QueryContext(ctx, args...)
	} else {
		rows, err = c.conn.cc.QueryContext(ctx, c.statement.Text, args...)
	}
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, xerrors.WithStackTrace(xerrors.Join(err, rows.Close()))
	}

	return &cursor{
		rows:    rows,
		columns: columns,
	}, nil
}

func (c *command) Close() error {
	if c.stmt == nil {
		return nil
	}
	if err := c.stmt.Close(); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

// toArgs makes database/sql args. Param without name is positional,
// @name and :name are passed as sql.Named("name", ...)
func toArgs(params []backend.Param) []any {
	if len(params) == 0 {
		return nil
	}
	args := make([]any, 0, len(params))
	for _, p := range params {
		if p.Name == "" {
			args = append(args, p.Value)
		} else {
			args = append(args, sql.Named(strings.TrimLeft(p.Name, "@:"), p.Value))
		}
	}

	return args
}
