package xerrors

import (
	"github.com/ydb-platform/ydb-go-rowset/internal/stack"
)

type withStackTraceOption func(depth *int)

// WithSkipDepth attributes error to the caller skipDepth frames above the WithStackTrace caller
func WithSkipDepth(skipDepth int) withStackTraceOption {
	return func(depth *int) {
		*depth += skipDepth
	}
}

// WithStackTrace wraps err with the function, file and line of the caller.
// Wrapped error keeps errors.Is and errors.As chains.
func WithStackTrace(err error, opts ...withStackTraceOption) error {
	if err == nil {
		return nil
	}
	depth := 1
	for _, opt := range opts {
		if opt != nil {
			opt(&depth)
		}
	}

	return &stackError{
		err:    err,
		record: stack.Record(depth),
	}
}

type stackError struct {
	err    error
	record string
}

func (e *stackError) Error() string {
	return e.err.Error() + " at `" + e.record + "`"
}

func (e *stackError) Unwrap() error {
	return e.err
}
