package bind

import (
	"unicode"
	"unicode/utf8"
)

type (
	sqlLexer struct {
		src     string
		start   int
		pos     int
		stateFn stateFn
		parts   []interface{}
		err     error
	}
	stateFn func(*sqlLexer) stateFn

	// namedArg is @name or :name placeholder with prefix
	namedArg string
	// bracketIdent is [name] identifier
	bracketIdent string
)

func (arg namedArg) name() string {
	return string(arg[1:])
}

func lex(sql string) (parts []interface{}, _ error) {
	l := &sqlLexer{
		src:     sql,
		stateFn: rawState,
	}
	for l.stateFn != nil {
		l.stateFn = l.stateFn(l)
	}

	return l.parts, l.err
}

func (l *sqlLexer) flush(end int) {
	if end-l.start > 0 {
		l.parts = append(l.parts, l.src[l.start:end])
	}
	l.start = end
}

//nolint:funlen
func rawState(l *sqlLexer) stateFn {
	for {
		r, width := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += width

		switch r {
		case '`', '\'', '"':
			return quoteState(r)
		case '@':
			if prev(l.src, l.pos-width) != '@' && isIdentStart(next(l.src, l.pos)) {
				l.flush(l.pos - width)

				return namedArgState
			}
		case ':':
			nextRune := next(l.src, l.pos)
			if prev(l.src, l.pos-width) != ':' && nextRune != ':' && isIdentStart(nextRune) {
				l.flush(l.pos - width)

				return namedArgState
			}
		case '[':
			// a[i], f(x)[1] and m[1][2] are subscripts
			if isSubscriptBase(prev(l.src, l.pos-width)) {
				break
			}
			l.flush(l.pos - width)

			return bracketState
		case '-':
			nextRune, width := utf8.DecodeRuneInString(l.src[l.pos:])
			if nextRune == '-' {
				l.pos += width

				return oneLineCommentState
			}
		case '/':
			nextRune, width := utf8.DecodeRuneInString(l.src[l.pos:])
			if nextRune == '*' {
				l.pos += width

				return multilineCommentState
			}
		case utf8.RuneError:
			if width == 0 {
				l.flush(l.pos)

				return nil
			}
		}
	}
}

// quoteState skips quoted text, doubled quote is escaped quote
func quoteState(quote rune) stateFn {
	return func(l *sqlLexer) stateFn {
		for {
			r, width := utf8.DecodeRuneInString(l.src[l.pos:])
			l.pos += width

			switch r {
			case quote:
				if next(l.src, l.pos) != quote {
					return rawState
				}
				l.pos += width
			case utf8.RuneError:
				if width == 0 {
					l.err = ErrUnterminatedQuotes
					l.flush(l.pos)

					return nil
				}
			}
		}
	}
}

func oneLineCommentState(l *sqlLexer) stateFn {
	for {
		r, width := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += width

		switch r {
		case '\n', '\r':
			return rawState
		case utf8.RuneError:
			if width == 0 {
				l.flush(l.pos)

				return nil
			}
		}
	}
}

func multilineCommentState(l *sqlLexer) stateFn {
	for {
		r, width := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += width

		switch r {
		case '*':
			nextRune, width := utf8.DecodeRuneInString(l.src[l.pos:])
			if nextRune == '/' {
				l.pos += width

				return rawState
			}
		case utf8.RuneError:
			if width == 0 {
				l.flush(l.pos)

				return nil
			}
		}
	}
}

func namedArgState(l *sqlLexer) stateFn {
	begin := l.pos
	for {
		r, width := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentRune(r) {
			break
		}
		l.pos += width
	}
	l.parts = append(l.parts, namedArg(l.src[begin-1:l.pos]))
	l.start = l.pos

	return rawState
}

// bracketState handles text after '[', subscripts like x [1] stay as is
func bracketState(l *sqlLexer) stateFn {
	begin := l.pos
	for {
		r, width := utf8.DecodeRuneInString(l.src[l.pos:])
		switch {
		case r == ']' && l.pos > begin:
			l.parts = append(l.parts, bracketIdent(l.src[begin:l.pos]))
			l.pos += width
			l.start = l.pos

			return rawState
		case r == '_' || unicode.IsLetter(r):
		case l.pos > begin && (unicode.IsDigit(r) || r == ' '):
		default:
			return rawState
		}
		l.pos += width
	}
}

func prev(s string, pos int) rune {
	r, _ := utf8.DecodeLastRuneInString(s[:pos])

	return r
}

func next(s string, pos int) rune {
	r, _ := utf8.DecodeRuneInString(s[pos:])

	return r
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isSubscriptBase(r rune) bool {
	return isIdentRune(r) || r == ')' || r == ']' || r == '"'
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
