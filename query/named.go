package query

import (
	"errors"
	"fmt"

	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

var errColumnNotFound = errors.New("column not found")

type NamedDestination struct {
	name string
	ref  any
}

func (dst NamedDestination) Name() string {
	return dst.name
}

func (dst NamedDestination) Ref() any {
	return dst.ref
}

// Named makes destination for ScanNamed
func Named(columnName string, destinationValueReference any) NamedDestination {
	return NamedDestination{
		name: columnName,
		ref:  destinationValueReference,
	}
}

// ScanNamed scans columns of row by name. Columns which not requested are discarded.
func ScanNamed(row Row, dst ...NamedDestination) error {
	columns := row.Columns()
	refs := make([]any, len(columns))
	for i := range refs {
		refs[i] = new(any)
	}
	for _, d := range dst {
		idx := -1
		for i, c := range columns {
			if c == d.name {
				idx = i

				break
			}
		}
		if idx < 0 {
			return xerrors.WithStackTrace(fmt.Errorf("%w: %q in %v", errColumnNotFound, d.name, columns))
		}
		refs[idx] = d.ref
	}

	return row.Scan(refs...)
}
