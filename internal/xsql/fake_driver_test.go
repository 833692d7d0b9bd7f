package xsql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"

	"github.com/rekby/fixenv"
)

var errFakeUnknownQuery = errors.New("unknown query")

type (
	fakeResult struct {
		columns []string
		rows    [][]driver.Value
	}
	fakeCall struct {
		prepared bool
		query    string
		args     []driver.NamedValue
	}
	fakeDB struct {
		mu         sync.Mutex
		results    map[string]fakeResult
		calls      []fakeCall
		rowsClosed int
	}
	fakeConnector struct {
		db *fakeDB
	}
	fakeConn struct {
		db *fakeDB
	}
	fakeStmt struct {
		db    *fakeDB
		query string
	}
	fakeRows struct {
		db     *fakeDB
		result fakeResult
		pos    int
	}
)

var (
	_ driver.Connector          = (*fakeConnector)(nil)
	_ driver.QueryerContext     = (*fakeConn)(nil)
	_ driver.StmtQueryContext   = (*fakeStmt)(nil)
	_ driver.ConnPrepareContext = (*fakeConn)(nil)
)

func (db *fakeDB) query(prepared bool, query string, args []driver.NamedValue) (driver.Rows, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.calls = append(db.calls, fakeCall{
		prepared: prepared,
		query:    query,
		args:     args,
	})
	result, has := db.results[query]
	if !has {
		return nil, errFakeUnknownQuery
	}

	return &fakeRows{db: db, result: result}, nil
}

func (db *fakeDB) Calls() []fakeCall {
	db.mu.Lock()
	defer db.mu.Unlock()

	return append([]fakeCall(nil), db.calls...)
}

func (db *fakeDB) RowsClosed() int {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.rowsClosed
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{db: c.db}, nil
}

func (c *fakeConnector) Driver() driver.Driver {
	return nil
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *fakeConn) PrepareContext(_ context.Context, query string) (driver.Stmt, error) {
	return &fakeStmt{db: c.db, query: query}, nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	return c.db.query(false, query, args)
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, driver.ErrSkip
}

func (s *fakeStmt) Close() error {
	return nil
}

func (s *fakeStmt) NumInput() int {
	return -1
}

func (s *fakeStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, driver.ErrSkip
}

func (s *fakeStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, driver.ErrSkip
}

func (s *fakeStmt) QueryContext(_ context.Context, args []driver.NamedValue) (driver.Rows, error) {
	return s.db.query(true, s.query, args)
}

func (r *fakeRows) Columns() []string {
	return r.result.columns
}

func (r *fakeRows) Close() error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.rowsClosed++

	return nil
}

func (r *fakeRows) Next(dst []driver.Value) error {
	if r.pos >= len(r.result.rows) {
		return io.EOF
	}
	copy(dst, r.result.rows[r.pos])
	r.pos++

	return nil
}

func FakeDB(e fixenv.Env) *fakeDB {
	f := func() (*fixenv.GenericResult[*fakeDB], error) {
		return fixenv.NewGenericResult(&fakeDB{
			results: map[string]fakeResult{
				"SELECT id, amount FROM orders WHERE customer_id = @id": {
					columns: []string{"id", "amount"},
					rows: [][]driver.Value{
						{int64(101), int64(10)},
						{int64(102), int64(20)},
						{int64(103), int64(30)},
					},
				},
				"SELECT 1 WHERE false": {
					columns: []string{"?column?"},
				},
			},
		}), nil
	}

	return fixenv.CacheResult(e, f)
}

func SQLDB(e fixenv.Env) *sql.DB {
	f := func() (*fixenv.GenericResult[*sql.DB], error) {
		db := sql.OpenDB(&fakeConnector{db: FakeDB(e)})

		return fixenv.NewGenericResultWithCleanup(db, func() {
			_ = db.Close()
		}), nil
	}

	return fixenv.CacheResult(e, f)
}
