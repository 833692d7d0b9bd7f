package backend

import (
	"context"
)

//go:generate mockgen -destination backendmock/backend_mock.go -package backendmock -write_package_comment=false github.com/ydb-platform/ydb-go-rowset/internal/backend Backend,Conn,Command,Cursor

type (
	// Backend opens connections to the data source
	Backend interface {
		Conn(ctx context.Context) (Conn, error)
	}
	// Conn is a scoped connection. Commands created by conn must be closed before conn.
	Conn interface {
		Command() Command
		Close() error
	}
	// Command holds the statement to execute. Statement may be changed in place until Execute.
	Command interface {
		Statement() *Statement
		Execute(ctx context.Context) (Cursor, error)
		Close() error
	}
	// Cursor is a forward-only, single-pass iterator over result rows.
	// Before the first Next cursor is positioned before the first row.
	Cursor interface {
		Next() bool
		Err() error
		FieldCount() int
		Columns() []string
		Scan(dst ...any) error
		Close() error
	}
)
