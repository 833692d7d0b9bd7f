package bind

import (
	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
	"github.com/ydb-platform/ydb-go-rowset/internal/xstring"
)

// PositionalArgs rewrites named placeholders to '?'.
// Param value is repeated for every occurrence of placeholder.
type PositionalArgs struct{}

func (m PositionalArgs) RewriteStatement(st *backend.Statement) error {
	parts, hasArgs, err := lexStatement(st)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	if !hasArgs {
		return nil
	}

	var (
		buffer    = xstring.Buffer()
		newParams = make([]backend.Param, 0, len(st.Params))
	)
	defer buffer.Free()

	for _, p := range parts {
		switch p := p.(type) {
		case string:
			buffer.WriteString(p)
		case bracketIdent:
			buffer.WriteByte('[')
			buffer.WriteString(string(p))
			buffer.WriteByte(']')
		case namedArg:
			param, err := lookupParam(st, p.name())
			if err != nil {
				return xerrors.WithStackTrace(err)
			}
			newParams = append(newParams, backend.Param{Value: param.Value})
			buffer.WriteByte('?')
		}
	}

	st.Text = buffer.String()
	st.Params = newParams

	return nil
}
