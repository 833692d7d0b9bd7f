package xtest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
)

var errScanArgs = errors.New("wrong number of scan arguments")

type (
	// Backend is an in-memory backend.Backend. Every command returns Rows.
	// Row without values is a zero-field row.
	Backend struct {
		Columns    []string
		Rows       [][]any
		ConnErr    error
		ExecuteErr error
		// CursorErr is reported by cursor after all Rows
		CursorErr error

		mu    sync.Mutex
		stats BackendStats
	}
	BackendStats struct {
		Conns          int
		ConnsClosed    int
		Commands       int
		CommandsClosed int
		Executed       []backend.Statement
		Cursors        int
		CursorsClosed  int
	}
	fakeConn struct {
		b *Backend
	}
	fakeCommand struct {
		b         *Backend
		statement backend.Statement
	}
	fakeCursor struct {
		b   *Backend
		pos int
	}
)

var _ backend.Backend = (*Backend)(nil)

func (b *Backend) Stats() BackendStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	stats := b.stats
	stats.Executed = append([]backend.Statement(nil), b.stats.Executed...)

	return stats
}

// Released reports whether every opened conn, command and cursor was closed exactly once
func (b *Backend) Released() bool {
	s := b.Stats()

	return s.Conns == s.ConnsClosed && s.Commands == s.CommandsClosed && s.Cursors == s.CursorsClosed
}

func (b *Backend) update(f func(s *BackendStats)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	f(&b.stats)
}

func (b *Backend) Conn(context.Context) (backend.Conn, error) {
	if b.ConnErr != nil {
		return nil, b.ConnErr
	}
	b.update(func(s *BackendStats) {
		s.Conns++
	})

	return &fakeConn{b: b}, nil
}

func (c *fakeConn) Command() backend.Command {
	c.b.update(func(s *BackendStats) {
		s.Commands++
	})

	return &fakeCommand{b: c.b}
}

func (c *fakeConn) Close() error {
	c.b.update(func(s *BackendStats) {
		s.ConnsClosed++
	})

	return nil
}

func (c *fakeCommand) Statement() *backend.Statement {
	return &c.statement
}

func (c *fakeCommand) Execute(context.Context) (backend.Cursor, error) {
	c.b.update(func(s *BackendStats) {
		s.Executed = append(s.Executed, c.statement)
	})
	if c.b.ExecuteErr != nil {
		return nil, c.b.ExecuteErr
	}
	c.b.update(func(s *BackendStats) {
		s.Cursors++
	})

	return &fakeCursor{b: c.b}, nil
}

func (c *fakeCommand) Close() error {
	c.b.update(func(s *BackendStats) {
		s.CommandsClosed++
	})

	return nil
}

func (c *fakeCursor) Next() bool {
	if c.pos >= len(c.b.Rows) {
		return false
	}
	c.pos++

	return true
}

func (c *fakeCursor) Err() error {
	if c.pos >= len(c.b.Rows) {
		return c.b.CursorErr
	}

	return nil
}

func (c *fakeCursor) row() []any {
	if c.pos == 0 {
		return nil
	}

	return c.b.Rows[c.pos-1]
}

func (c *fakeCursor) FieldCount() int {
	return len(c.row())
}

func (c *fakeCursor) Columns() []string {
	return c.b.Columns
}

func (c *fakeCursor) Scan(dst ...any) error {
	row := c.row()
	if len(dst) != len(row) {
		return fmt.Errorf("%w: %d, row has %d fields", errScanArgs, len(dst), len(row))
	}
	for i := range dst {
		reflect.ValueOf(dst[i]).Elem().Set(reflect.ValueOf(row[i]))
	}

	return nil
}

func (c *fakeCursor) Close() error {
	c.b.update(func(s *BackendStats) {
		s.CursorsClosed++
	})

	return nil
}
