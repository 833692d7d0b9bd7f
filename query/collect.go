package query

import (
	"context"

	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

// Collect reads all values of rows and closes rows
func Collect[T any](ctx context.Context, rows Rows[T]) (values []T, finalErr error) {
	defer func() {
		if err := rows.Close(ctx); err != nil && finalErr == nil {
			finalErr = xerrors.WithStackTrace(err)
		}
	}()
	for {
		v, err := rows.Next(ctx)
		if err != nil {
			return values, xerrors.HideEOF(err)
		}
		values = append(values, v)
	}
}
