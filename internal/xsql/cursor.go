package xsql

import (
	"database/sql"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

type cursor struct {
	rows    *sql.Rows
	columns []string
}

var _ backend.Cursor = (*cursor)(nil)

func (c *cursor) Next() bool {
	return c.rows.Next()
}

func (c *cursor) Err() error {
	if err := c.rows.Err(); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

func (c *cursor) FieldCount() int {
	return len(c.columns)
}

func (c *cursor) Columns() []string {
	return c.columns
}

func (c *cursor) Scan(dst ...any) error {
	if err := c.rows.Scan(dst...); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

func (c *cursor) Close() error {
	if err := c.rows.Close(); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}
