package config

import (
	"github.com/ydb-platform/ydb-go-rowset/internal/bind"
	"github.com/ydb-platform/ydb-go-rowset/query"
	"github.com/ydb-platform/ydb-go-rowset/trace"
)

type Config struct {
	trace          *trace.Rowset
	bindings       bind.Bindings
	prepare        bool
	mappingContext *query.MappingContext
}

func New(opts ...Option) *Config {
	c := defaults()
	for _, o := range opts {
		if o != nil {
			o(c)
		}
	}

	return c
}

func defaults() *Config {
	return &Config{
		trace:          &trace.Rowset{},
		prepare:        true,
		mappingContext: query.NewMappingContext(),
	}
}

// Trace defines trace over rows activity
func (c *Config) Trace() *trace.Rowset {
	return c.trace
}

// Bindings are applied to every command before execution
func (c *Config) Bindings() bind.Bindings {
	return c.bindings
}

// Prepare reports whether commands are executed as prepared statements
func (c *Config) Prepare() bool {
	return c.prepare
}

// MappingContext is shared by all queries of driver if query has not its own
func (c *Config) MappingContext() *query.MappingContext {
	return c.mappingContext
}
