package query

type (
	// Mapper converts the current row into a value of T. Mapper is called once per row.
	Mapper[T any] func(row Row, mc *MappingContext) (T, error)

	// Resolver gives a Mapper for query text. Resolver is called once per Rows.
	// A nil Mapper makes the first Next of Rows fail.
	Resolver[T any] interface {
		Mapper(query string, mc *MappingContext) Mapper[T]
	}

	staticResolver[T any] struct {
		mapper Mapper[T]
	}

	// ResolverFunc is an adapter to allow the use of ordinary functions as Resolver
	ResolverFunc[T any] func(query string, mc *MappingContext) Mapper[T]
)

func (f ResolverFunc[T]) Mapper(query string, mc *MappingContext) Mapper[T] {
	return f(query, mc)
}

func (r staticResolver[T]) Mapper(string, *MappingContext) Mapper[T] {
	return r.mapper
}

// MapperOf makes Resolver which always returns mapper
func MapperOf[T any](mapper Mapper[T]) Resolver[T] {
	return staticResolver[T]{mapper: mapper}
}
