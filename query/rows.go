package query

import (
	"context"

	"github.com/ydb-platform/ydb-go-rowset/internal/xiter"
)

type (
	// Row gives read access to the current cursor row
	Row interface {
		Columns() []string
		FieldCount() int
		Scan(dst ...any) error
	}

	// Rows is a lazy, forward-only, single-pass sequence of materialized values.
	// Rows is not restartable: build a new Rows for the same query to iterate again.
	// Rows is not safe for concurrent use.
	Rows[T any] interface {
		QueryText

		// Next returns next value. The end of sequence is reported as io.EOF.
		// Query is executed on the first call of Next.
		Next(ctx context.Context) (T, error)

		// Range returns iterator over values. Breaking out of iteration closes Rows.
		Range(ctx context.Context) xiter.Seq2[T, error]

		// Close releases cursor, command and connection. Close is idempotent.
		Close(ctx context.Context) error

		// IsGroupBy reports whether values are aggregated rows
		IsGroupBy() bool
	}

	// QueryText is implemented by anything bound to a query text
	QueryText interface {
		QueryText() string
	}
)
