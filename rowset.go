package rowset

import (
	"github.com/ydb-platform/ydb-go-rowset/internal/enumerator"
	"github.com/ydb-platform/ydb-go-rowset/internal/executor"
	"github.com/ydb-platform/ydb-go-rowset/internal/params"
	"github.com/ydb-platform/ydb-go-rowset/query"
)

// Query makes lazy Rows of T. The query is executed on the first Rows.Next,
// values are produced by the mapper from resolver.
//
// Errors of options (for example identity cache of other type) are returned by the first Rows.Next.
func Query[T any](d *Driver, sql string, resolver query.Resolver[T], opts ...query.Option) query.Rows[T] {
	o := query.NewOptions(opts...)

	cache, attach, err := enumerator.FromOptions[T](o)

	mc := o.MappingContext()
	if mc == nil {
		mc = d.config.MappingContext()
	}

	t := d.config.Trace()
	if qt, qtOpts := o.Trace(); qt != nil {
		t = t.Compose(qt, qtOpts...)
	}

	vars := &enumerator.Vars[T]{
		Query: &executor.Query{
			Text:     sql,
			Params:   o.Params(),
			Backend:  d.backend,
			Mapping:  mc,
			Bindings: d.config.Bindings(),
			Trace:    t,
		},
		Resolver: resolver,
		Attach:   attach,
		Err:      err,
	}
	if o.GroupBy() {
		return enumerator.NewGroupBy(vars, cache)
	}

	return enumerator.New(vars, cache)
}

// ParamsBuilder used for create query arguments instead of tons options.
//
// Example:
//
//	rows := rowset.Query(d, sql, resolver, query.WithParams(
//		rowset.ParamsBuilder().
//			Param("id").Value(7).
//			Param("since").Func(func() (any, error) { return lastSync(), nil }).
//			Build(),
//	))
func ParamsBuilder() params.Builder {
	return params.Builder{}
}
