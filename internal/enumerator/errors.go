package enumerator

import "errors"

var (
	ErrMissingMapper     = errors.New("mapper is not defined for rows")
	ErrClosed            = errors.New("rows closed")
	ErrIdentityCacheType = errors.New("identity cache value type differs from rows type")
	ErrAttachType        = errors.New("attach func argument type differs from rows type")
)
