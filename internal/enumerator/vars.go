package enumerator

import (
	"fmt"

	"github.com/ydb-platform/ydb-go-rowset/internal/executor"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
	"github.com/ydb-platform/ydb-go-rowset/internal/xreflect"
	"github.com/ydb-platform/ydb-go-rowset/query"
)

// Vars is an immutable per-enumeration bundle
type Vars[T any] struct {
	Query    *executor.Query
	Resolver query.Resolver[T]
	// Attach is called once for every distinct instance yielded with identity cache
	Attach func(v T)
	// Err is a configuration error reported by the first Next
	Err error
}

// FromOptions extracts typed identity cache and attach hook from query options
func FromOptions[T any](opts *query.Options) (cache query.IdentityCache[T], attach func(v T), _ error) {
	if v := opts.IdentityCache(); v != nil && !xreflect.IsNil(v) {
		c, ok := v.(query.IdentityCache[T])
		if !ok {
			return nil, nil, xerrors.WithStackTrace(fmt.Errorf("%w: %T", ErrIdentityCacheType, v))
		}
		cache = c
	}
	if v := opts.Attach(); v != nil {
		f, ok := v.(func(v T))
		if !ok {
			return nil, nil, xerrors.WithStackTrace(fmt.Errorf("%w: %T", ErrAttachType, v))
		}
		attach = f
	}

	return cache, attach, nil
}
