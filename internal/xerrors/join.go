package xerrors

import (
	"fmt"

	"github.com/ydb-platform/ydb-go-rowset/internal/xstring"
)

// Join returns nil if all errs are nil, the single non-nil error if there is
// only one, and a joined error otherwise
func Join(errs ...error) error {
	nonNil := make(joinErrors, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return nonNil
	}
}

type joinErrors []error

func (errs joinErrors) Error() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteByte('[')
	for i, err := range errs {
		if i > 0 {
			_ = b.WriteByte(',')
		}
		_, _ = fmt.Fprintf(b, "%q", err.Error())
	}
	b.WriteByte(']')

	return b.String()
}

// Unwrap lets errors.Is and errors.As walk every joined error
func (errs joinErrors) Unwrap() []error {
	return errs
}
