package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-rowset"
	"github.com/ydb-platform/ydb-go-rowset/internal/xtest"
	"github.com/ydb-platform/ydb-go-rowset/log"
	"github.com/ydb-platform/ydb-go-rowset/query"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) (lines []map[string]any) {
	t.Helper()

	dec := json.NewDecoder(buf)
	for dec.More() {
		var l map[string]any
		require.NoError(t, dec.Decode(&l))
		lines = append(lines, l)
	}

	return lines
}

func TestRunQuery(t *testing.T) {
	ctx := context.Background()
	t.Run("AllRows", func(t *testing.T) {
		b := &xtest.Backend{
			Columns: []string{"id", "name"},
			Rows: [][]any{
				{int64(1), []byte("first")},
				{int64(2), []byte("second")},
			},
		}
		d, err := rowset.New(ctx, b)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, runQuery(ctx, d, 3, "SELECT id, name FROM t", nil, "", newOutput(&buf)))
		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)
		require.EqualValues(t, 3, lines[0]["query"])
		require.Equal(t, map[string]any{"id": float64(1), "name": "first"}, lines[0]["row"])
		require.Equal(t, map[string]any{"id": float64(2), "name": "second"}, lines[1]["row"])
		require.True(t, b.Released())
	})
	t.Run("Key", func(t *testing.T) {
		b := &xtest.Backend{
			Columns: []string{"customer_id", "order_id"},
			Rows: [][]any{
				{int64(1), int64(10)},
				{int64(1), int64(11)},
				{int64(2), int64(12)},
				{int64(1), int64(13)},
			},
		}
		d, err := rowset.New(ctx, b)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, runQuery(ctx, d, 0, "SELECT customer_id, order_id FROM orders", nil, "customer_id",
			newOutput(&buf),
		))
		lines := decodeLines(t, &buf)
		require.Len(t, lines, 2)
		require.Equal(t, map[string]any{"customer_id": float64(1), "order_id": float64(10)}, lines[0]["row"])
		require.Equal(t, map[string]any{"customer_id": float64(2), "order_id": float64(12)}, lines[1]["row"])
	})
	t.Run("Params", func(t *testing.T) {
		b := &xtest.Backend{}
		d, err := rowset.New(ctx, b, rowset.WithNumericArgs())
		require.NoError(t, err)

		params, err := queryParams([]string{"id=7"}, nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, runQuery(ctx, d, 0, "SELECT * FROM t WHERE id = @id", params, "", newOutput(&buf)))
		require.Zero(t, buf.Len())
		executed := b.Stats().Executed
		require.Len(t, executed, 1)
		require.Equal(t, "SELECT * FROM t WHERE id = $1", executed[0].Text)
		require.Len(t, executed[0].Params, 1)
		require.Equal(t, "7", executed[0].Params[0].Value)
	})
	t.Run("EnvNotSet", func(t *testing.T) {
		b := &xtest.Backend{}
		d, err := rowset.New(ctx, b)
		require.NoError(t, err)

		params, err := queryParams(nil, []string{"token=ROWSET_TEST_UNDEFINED_ENV"})
		require.NoError(t, err)

		var buf bytes.Buffer
		err = runQuery(ctx, d, 1, "SELECT * FROM t WHERE token = @token", params, "", newOutput(&buf))
		require.ErrorIs(t, err, errEnvNotSet)
		require.Contains(t, err.Error(), "query #1")
		require.True(t, b.Released())
	})
	t.Run("EnvSet", func(t *testing.T) {
		t.Setenv("ROWSET_TEST_TOKEN", "secret")
		b := &xtest.Backend{}
		d, err := rowset.New(ctx, b, rowset.WithPositionalArgs())
		require.NoError(t, err)

		params, err := queryParams(nil, []string{"token=ROWSET_TEST_TOKEN"})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, runQuery(ctx, d, 0, "SELECT * FROM t WHERE token = :token", params, "", newOutput(&buf)))
		executed := b.Stats().Executed
		require.Len(t, executed, 1)
		require.Equal(t, "SELECT * FROM t WHERE token = ?", executed[0].Text)
		require.Equal(t, "secret", executed[0].Params[0].Value)
	})
	t.Run("ExecuteFailed", func(t *testing.T) {
		errTest := errors.New("relation does not exist")
		b := &xtest.Backend{ExecuteErr: errTest}
		d, err := rowset.New(ctx, b)
		require.NoError(t, err)

		var buf bytes.Buffer
		err = runQuery(ctx, d, 0, "SELECT * FROM t", nil, "", newOutput(&buf))
		require.ErrorIs(t, err, errTest)
		require.True(t, b.Released())
	})
}

func TestRunQueries(t *testing.T) {
	xtest.Repeat(t, 10, func(t *testing.T) {
		xtest.CheckGoroutinesLeak(t)

		var (
			ctx = xtest.Context(t)
			b   = &xtest.Backend{
				Columns: []string{"id"},
				Rows:    [][]any{{int64(1)}, {int64(2)}},
			}
			buf  bytes.Buffer
			opts = &options{
				queries: []string{"SELECT id FROM a", "SELECT id FROM b"},
			}
		)
		d, err := rowset.New(ctx, b)
		require.NoError(t, err)
		require.NoError(t, runQueries(ctx, d, opts, &buf))

		perQuery := map[float64]int{}
		for _, l := range decodeLines(t, &buf) {
			perQuery[l["query"].(float64)]++
		}
		require.Equal(t, map[float64]int{0: 2, 1: 2}, perQuery)
		require.True(t, b.Released())
		require.Len(t, b.Stats().Executed, 2)
	})
}

func TestQueryParams(t *testing.T) {
	for _, tt := range []struct {
		name   string
		values []string
		envs   []string
		err    error
		count  int
	}{
		{
			name:   "Values",
			values: []string{"id=7", "name=a=b"},
			count:  2,
		},
		{
			name:  "Envs",
			envs:  []string{"token=TOKEN"},
			count: 1,
		},
		{
			name:   "WithoutValue",
			values: []string{"id"},
			err:    errBadParam,
		},
		{
			name:   "EmptyName",
			values: []string{"=7"},
			err:    errBadParam,
		},
		{
			name: "EmptyEnv",
			envs: []string{"token="},
			err:  errBadParam,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := queryParams(tt.values, tt.envs)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}
			require.NoError(t, err)
			require.Len(t, opts, tt.count)
			require.Equal(t, tt.count, query.NewOptions(opts...).Params().Count())
		})
	}
}

func TestDriverOptions(t *testing.T) {
	t.Run("UnknownPlaceholders", func(t *testing.T) {
		o := &options{placeholders: "named"}
		_, err := o.driverOptions(log.Default(&bytes.Buffer{}))
		require.ErrorIs(t, err, errUnknownPlaceholders)
	})
	t.Run("Defaults", func(t *testing.T) {
		var (
			ctx = context.Background()
			b   = &xtest.Backend{}
			o   = &options{
				placeholders:   placeholdersNumeric,
				bracketQuoting: true,
				prolog:         "/* cli */",
			}
		)
		opts, err := o.driverOptions(log.Default(&bytes.Buffer{}))
		require.NoError(t, err)
		d, err := rowset.New(ctx, b, opts...)
		require.NoError(t, err)

		_, err = query.Collect(ctx, rowset.Query(d, "SELECT [Order Id] FROM [Orders] WHERE [Id] = @id",
			query.MapperOf[record](scanRecord), query.WithParam("id", 1),
		))
		require.NoError(t, err)
		executed := b.Stats().Executed
		require.Len(t, executed, 1)
		require.Equal(t, `/* cli */SELECT "Order Id" FROM "Orders" WHERE "Id" = $1`, executed[0].Text)
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("SQLRequired", func(t *testing.T) {
		cmd := newRootCommand()
		cmd.SetArgs([]string{"--dsn", "postgres://localhost/db"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		err := cmd.Execute()
		require.Error(t, err)
		require.Contains(t, err.Error(), "sql")
	})
	t.Run("EmptyDSN", func(t *testing.T) {
		t.Setenv("ROWSET_DSN", "")
		cmd := newRootCommand()
		cmd.SetArgs([]string{"--sql", "SELECT 1"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		require.ErrorIs(t, cmd.Execute(), errEmptyDSN)
	})
	t.Run("BadLogLevel", func(t *testing.T) {
		cmd := newRootCommand()
		cmd.SetArgs([]string{"--dsn", "postgres://localhost/db", "--sql", "SELECT 1", "--log-level", "loud"})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		err := cmd.Execute()
		require.Error(t, err)
		require.True(t, strings.Contains(err.Error(), "loud"))
	})
}
