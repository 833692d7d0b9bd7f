package config

import (
	"github.com/ydb-platform/ydb-go-rowset/internal/bind"
	"github.com/ydb-platform/ydb-go-rowset/query"
	"github.com/ydb-platform/ydb-go-rowset/trace"
)

type Option func(*Config)

// WithTrace appends rowset trace to early defined traces
func WithTrace(t *trace.Rowset, opts ...trace.RowsetComposeOption) Option {
	return func(c *Config) {
		c.trace = c.trace.Compose(t, opts...)
	}
}

// WithBindings appends bindings to early defined bindings
func WithBindings(bindings ...bind.Bind) Option {
	return func(c *Config) {
		c.bindings = append(c.bindings, bindings...)
	}
}

func WithoutPrepare() Option {
	return func(c *Config) {
		c.prepare = false
	}
}

// WithProlog prepends text to every query before command build
func WithProlog(text string) Option {
	return func(c *Config) {
		c.mappingContext.OnGenerateSQL(func(_ *query.MappingContext, sql string) (string, error) {
			return text + sql, nil
		})
	}
}

// WithGenerateSQL appends query text hook to driver mapping context
func WithGenerateSQL(f query.GenerateSQLFunc) Option {
	return func(c *Config) {
		c.mappingContext.OnGenerateSQL(f)
	}
}
