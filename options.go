package rowset

import (
	"context"

	"github.com/ydb-platform/ydb-go-rowset/internal/bind"
	"github.com/ydb-platform/ydb-go-rowset/internal/config"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
	"github.com/ydb-platform/ydb-go-rowset/log"
	"github.com/ydb-platform/ydb-go-rowset/query"
	"github.com/ydb-platform/ydb-go-rowset/trace"
)

// Option contains configuration values for Driver
type Option func(ctx context.Context, d *Driver) error

// WithLogger enables logging for selected tracing events.
//
// See trace package documentation for details.
func WithLogger(l log.Logger, details trace.Detailer, opts ...log.Option) Option {
	return func(ctx context.Context, d *Driver) error {
		d.logger = l
		d.loggerOpts = opts
		d.loggerDetails = details

		return nil
	}
}

// WithTrace appends rowset trace to early defined traces
func WithTrace(t trace.Rowset, opts ...trace.RowsetComposeOption) Option { //nolint:gocritic
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithTrace(&t, opts...))

		return nil
	}
}

// WithBindings appends command rewriters applied before execution in order of appending
func WithBindings(bindings ...Bind) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithBindings(bindings...))

		return nil
	}
}

// WithNumericArgs rewrites @name and :name placeholders to $1, $2, ...
// Use it with drivers like lib/pq.
func WithNumericArgs() Option {
	return WithBindings(bind.NumericArgs{})
}

// WithPositionalArgs rewrites @name and :name placeholders to '?'
func WithPositionalArgs() Option {
	return WithBindings(bind.PositionalArgs{})
}

// WithBracketQuoting rewrites [name] identifiers with quote.
// Nil quote means ANSI double quotes.
func WithBracketQuoting(quote func(ident string) string) Option {
	return WithBindings(bind.NewBracketQuoting(quote))
}

// WithProlog prepends text to every query
func WithProlog(text string) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithProlog(text))

		return nil
	}
}

// WithGenerateSQL appends hook which rewrites query text before command build
func WithGenerateSQL(f query.GenerateSQLFunc) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithGenerateSQL(f))

		return nil
	}
}

// WithoutPrepare executes queries without prepared statements
func WithoutPrepare() Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithoutPrepare())

		return nil
	}
}

// MergeOptions concatenates provided options to one cumulative value.
func MergeOptions(opts ...Option) Option {
	return func(ctx context.Context, d *Driver) error {
		for _, o := range opts {
			if o != nil {
				if err := o(ctx, d); err != nil {
					return xerrors.WithStackTrace(err)
				}
			}
		}

		return nil
	}
}
