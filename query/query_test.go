package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ydb-platform/ydb-go-rowset/internal/xiter"
)

var errTest = errors.New("test")

type testRow struct {
	columns []string
	values  []any
	err     error
}

func (r *testRow) Columns() []string {
	return r.columns
}

func (r *testRow) FieldCount() int {
	return len(r.values)
}

func (r *testRow) Scan(dst ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dst) != len(r.values) {
		return fmt.Errorf("scan %d values into %d destinations", len(r.values), len(dst))
	}
	for i := range dst {
		reflect.ValueOf(dst[i]).Elem().Set(reflect.ValueOf(r.values[i]))
	}

	return nil
}

type testRows struct {
	values   []int
	nextErr  error
	closeErr error
	closed   int
}

func (r *testRows) QueryText() string {
	return "SELECT id FROM t"
}

func (r *testRows) Next(context.Context) (int, error) {
	if len(r.values) == 0 {
		if r.nextErr != nil {
			return 0, r.nextErr
		}

		return 0, io.EOF
	}
	v := r.values[0]
	r.values = r.values[1:]

	return v, nil
}

func (r *testRows) Range(context.Context) xiter.Seq2[int, error] {
	panic("not used")
}

func (r *testRows) Close(context.Context) error {
	r.closed++

	return r.closeErr
}

func (r *testRows) IsGroupBy() bool {
	return false
}

func TestScanNamed(t *testing.T) {
	row := &testRow{
		columns: []string{"id", "name", "amount"},
		values:  []any{int64(101), "first", 10.5},
	}
	t.Run("ByName", func(t *testing.T) {
		var (
			id   int64
			name string
		)
		require.NoError(t, ScanNamed(row, Named("name", &name), Named("id", &id)))
		require.Equal(t, int64(101), id)
		require.Equal(t, "first", name)
	})
	t.Run("MissingColumn", func(t *testing.T) {
		var id int64
		err := ScanNamed(row, Named("id", &id), Named("customer_id", &id))
		require.ErrorIs(t, err, errColumnNotFound)
		require.Contains(t, err.Error(), `"customer_id"`)
		require.Zero(t, id)
	})
	t.Run("ScanFailed", func(t *testing.T) {
		var id int64
		err := ScanNamed(&testRow{columns: []string{"id"}, err: errTest}, Named("id", &id))
		require.ErrorIs(t, err, errTest)
	})
	t.Run("Destination", func(t *testing.T) {
		var id int64
		dst := Named("id", &id)
		require.Equal(t, "id", dst.Name())
		require.Same(t, &id, dst.Ref())
	})
}

func TestCollect(t *testing.T) {
	ctx := context.Background()
	t.Run("All", func(t *testing.T) {
		rows := &testRows{values: []int{1, 2, 3}}
		values, err := Collect[int](ctx, rows)
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, values)
		require.Equal(t, 1, rows.closed)
	})
	t.Run("CloseFailed", func(t *testing.T) {
		rows := &testRows{values: []int{1}, closeErr: errTest}
		values, err := Collect[int](ctx, rows)
		require.ErrorIs(t, err, errTest)
		require.Equal(t, []int{1}, values)
	})
	t.Run("NextFailed", func(t *testing.T) {
		errClose := errors.New("close")
		rows := &testRows{values: []int{1, 2}, nextErr: errTest, closeErr: errClose}
		values, err := Collect[int](ctx, rows)
		require.ErrorIs(t, err, errTest)
		require.NotErrorIs(t, err, errClose)
		require.Equal(t, []int{1, 2}, values)
		require.Equal(t, 1, rows.closed)
	})
}

func TestMappingContext(t *testing.T) {
	t.Run("GenerateSQL", func(t *testing.T) {
		mc := NewMappingContext()
		mc.OnGenerateSQL(func(_ *MappingContext, sql string) (string, error) {
			return "/* a */" + sql, nil
		})
		mc.OnGenerateSQL(func(_ *MappingContext, sql string) (string, error) {
			return "/* b */" + sql, nil
		})
		sql, err := mc.GenerateSQL("SELECT 1")
		require.NoError(t, err)
		require.Equal(t, "/* b *//* a */SELECT 1", sql)
	})
	t.Run("GenerateSQLFailed", func(t *testing.T) {
		var calls int
		mc := NewMappingContext()
		mc.OnGenerateSQL(func(*MappingContext, string) (string, error) {
			return "", errTest
		})
		mc.OnGenerateSQL(func(_ *MappingContext, sql string) (string, error) {
			calls++

			return sql, nil
		})
		sql, err := mc.GenerateSQL("SELECT 1")
		require.ErrorIs(t, err, errTest)
		require.Regexp(t, "^test at `.*MappingContext\\).GenerateSQL", err.Error())
		require.Empty(t, sql)
		require.Zero(t, calls)
	})
	t.Run("HookReadsValue", func(t *testing.T) {
		type schemaKey struct{}
		mc := NewMappingContext()
		mc.Set(schemaKey{}, "sales")
		mc.OnGenerateSQL(func(mc *MappingContext, sql string) (string, error) {
			schema, _ := mc.Value(schemaKey{})

			return "SET search_path TO " + schema.(string) + ";" + sql, nil
		})
		sql, err := mc.GenerateSQL("SELECT 1")
		require.NoError(t, err)
		require.Equal(t, "SET search_path TO sales;SELECT 1", sql)
	})
	t.Run("Nil", func(t *testing.T) {
		var mc *MappingContext
		sql, err := mc.GenerateSQL("SELECT 1")
		require.NoError(t, err)
		require.Equal(t, "SELECT 1", sql)
		_, ok := mc.Value("key")
		require.False(t, ok)
	})
}
