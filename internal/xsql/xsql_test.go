package xsql

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xtest"
)

const ordersQuery = "SELECT id, amount FROM orders WHERE customer_id = @id"

func TestBackend(t *testing.T) {
	t.Run("Prepared", func(t *testing.T) {
		var (
			e   = fixenv.New(t)
			ctx = xtest.Context(t)
		)
		b, err := New(SQLDB(e))
		require.NoError(t, err)

		c, err := b.Conn(ctx)
		require.NoError(t, err)
		cmd := c.Command()
		cmd.Statement().Text = ordersQuery
		cmd.Statement().AddParam("@id", 7)

		cur, err := cmd.Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, cur.FieldCount())
		require.Equal(t, []string{"id", "amount"}, cur.Columns())

		var ids, amounts []int64
		for cur.Next() {
			var id, amount int64
			require.NoError(t, cur.Scan(&id, &amount))
			ids = append(ids, id)
			amounts = append(amounts, amount)
		}
		require.NoError(t, cur.Err())
		require.Equal(t, []int64{101, 102, 103}, ids)
		require.Equal(t, []int64{10, 20, 30}, amounts)

		require.NoError(t, cur.Close())
		require.NoError(t, cmd.Close())
		require.NoError(t, c.Close())

		calls := FakeDB(e).Calls()
		require.Len(t, calls, 1)
		require.True(t, calls[0].prepared)
		require.Equal(t, ordersQuery, calls[0].query)
		require.Equal(t, []driver.NamedValue{{Name: "id", Ordinal: 1, Value: int64(7)}}, calls[0].args)
		require.Equal(t, 1, FakeDB(e).RowsClosed())
		require.Zero(t, SQLDB(e).Stats().InUse)
	})
	t.Run("WithoutPrepare", func(t *testing.T) {
		var (
			e   = fixenv.New(t)
			ctx = xtest.Context(t)
		)
		b, err := New(SQLDB(e), WithoutPrepare())
		require.NoError(t, err)

		c, err := b.Conn(ctx)
		require.NoError(t, err)
		cmd := c.Command()
		cmd.Statement().Text = ordersQuery
		cmd.Statement().AddParam("", 7)

		cur, err := cmd.Execute(ctx)
		require.NoError(t, err)
		require.True(t, cur.Next())
		require.NoError(t, cur.Close())
		require.NoError(t, cmd.Close())
		require.NoError(t, c.Close())

		calls := FakeDB(e).Calls()
		require.Len(t, calls, 1)
		require.False(t, calls[0].prepared)
		require.Equal(t, []driver.NamedValue{{Ordinal: 1, Value: int64(7)}}, calls[0].args)
		require.Equal(t, 1, FakeDB(e).RowsClosed())
		require.Zero(t, SQLDB(e).Stats().InUse)
	})
	t.Run("Empty", func(t *testing.T) {
		var (
			e   = fixenv.New(t)
			ctx = xtest.Context(t)
		)
		b, err := New(SQLDB(e))
		require.NoError(t, err)

		c, err := b.Conn(ctx)
		require.NoError(t, err)
		defer func() {
			require.NoError(t, c.Close())
		}()
		cmd := c.Command()
		defer func() {
			require.NoError(t, cmd.Close())
		}()
		cmd.Statement().Text = "SELECT 1 WHERE false"

		cur, err := cmd.Execute(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, cur.FieldCount())
		require.False(t, cur.Next())
		require.NoError(t, cur.Err())
		require.NoError(t, cur.Close())
	})
	t.Run("ExecuteError", func(t *testing.T) {
		var (
			e   = fixenv.New(t)
			ctx = xtest.Context(t)
		)
		b, err := New(SQLDB(e))
		require.NoError(t, err)

		c, err := b.Conn(ctx)
		require.NoError(t, err)
		cmd := c.Command()
		cmd.Statement().Text = "SELECT unknown"

		cur, err := cmd.Execute(ctx)
		require.ErrorIs(t, err, errFakeUnknownQuery)
		require.Nil(t, cur)
		require.NoError(t, cmd.Close())
		require.NoError(t, c.Close())
		require.Zero(t, SQLDB(e).Stats().InUse)
	})
	t.Run("NilDB", func(t *testing.T) {
		_, err := New(nil)
		require.ErrorIs(t, err, errNilDB)
	})
}

func TestToArgs(t *testing.T) {
	require.Nil(t, toArgs(nil))
	require.Equal(t, []any{
		1,
		sql.Named("a", 2),
		sql.Named("b", 3),
		sql.Named("c", 4),
	}, toArgs([]backend.Param{
		{Value: 1},
		{Name: "a", Value: 2},
		{Name: "@b", Value: 3},
		{Name: ":c", Value: 4},
	}))
}
