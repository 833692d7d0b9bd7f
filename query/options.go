package query

import (
	"github.com/ydb-platform/ydb-go-rowset/internal/params"
	"github.com/ydb-platform/ydb-go-rowset/trace"
)

type (
	Option  func(o *Options)
	Options struct {
		params         params.Parameters
		identityCache  any
		attach         any
		groupBy        bool
		trace          *trace.Rowset
		traceOpts      []trace.RowsetComposeOption
		mappingContext *MappingContext
	}
)

func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

func (o *Options) Params() *params.Parameters {
	return &o.params
}

// IdentityCache returns value passed to WithIdentityCache.
// The type is checked against value type of Rows when Rows is built.
func (o *Options) IdentityCache() any {
	return o.identityCache
}

// Attach returns value passed to WithAttach
func (o *Options) Attach() any {
	return o.attach
}

func (o *Options) GroupBy() bool {
	return o.groupBy
}

func (o *Options) Trace() (*trace.Rowset, []trace.RowsetComposeOption) {
	return o.trace, o.traceOpts
}

func (o *Options) MappingContext() *MappingContext {
	return o.mappingContext
}

// WithParams appends bindings built with params builder
func WithParams(p *params.Parameters) Option {
	return func(o *Options) {
		if p != nil {
			o.params.Add(*p...)
		}
	}
}

// WithParam appends binding with value known at build time
func WithParam(name string, value any) Option {
	return func(o *Options) {
		o.params.Add(params.Named(name, value))
	}
}

// WithDeferredParam appends binding which value is produced when the query is executed
func WithDeferredParam(name string, producer func() (any, error)) Option {
	return func(o *Options) {
		o.params.Add(params.Deferred(name, producer))
	}
}

// WithIdentityCache makes Rows return canonical instances from cache.
// Cache is owned by caller and may be shared between sequential Rows.
func WithIdentityCache[T any](cache IdentityCache[T]) Option {
	return func(o *Options) {
		o.identityCache = cache
	}
}

// WithAttach registers hook which is called once for every distinct instance yielded by Rows.
// The hook is used only together with WithIdentityCache.
func WithAttach[T any](attach func(v T)) Option {
	return func(o *Options) {
		o.attach = attach
	}
}

// WithGroupBy marks Rows as enumerating aggregated rows
func WithGroupBy() Option {
	return func(o *Options) {
		o.groupBy = true
	}
}

// WithTrace appends trace for one query to driver trace
func WithTrace(t trace.Rowset, opts ...trace.RowsetComposeOption) Option {
	return func(o *Options) {
		if o.trace == nil {
			o.trace = &trace.Rowset{}
		}
		o.trace = o.trace.Compose(&t, opts...)
		o.traceOpts = append(o.traceOpts, opts...)
	}
}

// WithMappingContext replaces driver mapping context for one query
func WithMappingContext(mc *MappingContext) Option {
	return func(o *Options) {
		o.mappingContext = mc
	}
}
