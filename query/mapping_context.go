package query

import (
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

// GenerateSQLFunc rewrites raw query text before the command is built
type GenerateSQLFunc func(mc *MappingContext, sql string) (string, error)

// MappingContext is shared by all rows of a Rows. It carries query text hooks
// and arbitrary values for mappers.
type MappingContext struct {
	onGenerateSQL []GenerateSQLFunc
	values        map[any]any
}

func NewMappingContext() *MappingContext {
	return &MappingContext{}
}

// OnGenerateSQL appends hook which called before every command build
func (mc *MappingContext) OnGenerateSQL(f GenerateSQLFunc) {
	mc.onGenerateSQL = append(mc.onGenerateSQL, f)
}

// GenerateSQL applies OnGenerateSQL hooks in registration order
func (mc *MappingContext) GenerateSQL(sql string) (_ string, err error) {
	if mc == nil {
		return sql, nil
	}
	for _, f := range mc.onGenerateSQL {
		sql, err = f(mc, sql)
		if err != nil {
			return "", xerrors.WithStackTrace(err)
		}
	}

	return sql, nil
}

func (mc *MappingContext) Set(key, value any) {
	if mc.values == nil {
		mc.values = make(map[any]any)
	}
	mc.values[key] = value
}

func (mc *MappingContext) Value(key any) (value any, ok bool) {
	if mc == nil {
		return nil, false
	}
	value, ok = mc.values[key]

	return value, ok
}
