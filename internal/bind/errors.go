package bind

import "errors"

var (
	ErrParamNotFound      = errors.New("param not found")
	ErrUnterminatedQuotes = errors.New("unterminated quotes")
)
