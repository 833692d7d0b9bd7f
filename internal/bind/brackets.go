package bind

import (
	"strings"

	"github.com/ydb-platform/ydb-go-rowset/internal/backend"
	"github.com/ydb-platform/ydb-go-rowset/internal/xerrors"
	"github.com/ydb-platform/ydb-go-rowset/internal/xstring"
)

// BracketQuoting rewrites [name] identifiers with dialect quoting.
// Brackets directly after an identifier, a closing bracket or a quote are subscripts
// (a[i], f(x)[1], m[1][2]) and are kept. Bracket content must look like identifier,
// so x [1] is kept too. A subscript separated by space with identifier inside, like
// ARRAY [a], is quoted.
type BracketQuoting struct {
	quote func(ident string) string
}

// NewBracketQuoting makes BracketQuoting with quote func. Nil quote means ANSI double quotes.
func NewBracketQuoting(quote func(ident string) string) BracketQuoting {
	if quote == nil {
		quote = ansiQuote
	}

	return BracketQuoting{quote: quote}
}

func ansiQuote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func (m BracketQuoting) RewriteStatement(st *backend.Statement) error {
	parts, err := lex(st.Text)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}

	quote := m.quote
	if quote == nil {
		quote = ansiQuote
	}

	buffer := xstring.Buffer()
	defer buffer.Free()

	for _, p := range parts {
		switch p := p.(type) {
		case string:
			buffer.WriteString(p)
		case namedArg:
			buffer.WriteString(string(p))
		case bracketIdent:
			buffer.WriteString(quote(string(p)))
		}
	}

	st.Text = buffer.String()

	return nil
}
