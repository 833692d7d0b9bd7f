package bind

import (
	"strconv"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
	"github.com/ydb-platform/ydb-go-rowset/internal/xstring"
)

// NumericArgs rewrites named placeholders to $1, $2, ... in order of first occurrence.
// Repeated placeholder reuses its number. Params which are not referenced in text are dropped.
type NumericArgs struct{}

func (m NumericArgs) RewriteStatement(st *backend.Statement) error {
	parts, hasArgs, err := lexStatement(st)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	if !hasArgs {
		return nil
	}

	var (
		buffer    = xstring.Buffer()
		numbers   = make(map[string]int)
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
			n, has := numbers[p.name()]
			if !has {
				param, err := lookupParam(st, p.name())
				if err != nil {
					return xerrors.WithStackTrace(err)
				}
				newParams = append(newParams, backend.Param{Value: param.Value})
				n = len(newParams)
				numbers[p.name()] = n
			}
			buffer.WriteByte('$')
			buffer.WriteString(strconv.Itoa(n))
		}
	}

	st.Text = buffer.String()
	st.Params = newParams

	return nil
}
