package bind

import (
	"fmt"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
)

// lookupParam finds param bound as name, @name or :name
func lookupParam(st *backend.Statement, name string) (backend.Param, error) {
	for _, n := range [...]string{name, "@" + name, ":" + name} {
		if p, ok := st.Param(n); ok {
			return p, nil
		}
	}

	return backend.Param{}, xerrors.WithStackTrace(fmt.Errorf("%w: %q", ErrParamNotFound, name))
}

func lexStatement(st *backend.Statement) (parts []interface{}, hasArgs bool, _ error) {
	parts, err := lex(st.Text)
	if err != nil {
		return nil, false, xerrors.WithStackTrace(fmt.Errorf("%w: %s", err, st.Text))
	}
	for _, p := range parts {
		if _, ok := p.(namedArg); ok {
			return parts, true, nil
		}
	}

	return parts, false, nil
}
