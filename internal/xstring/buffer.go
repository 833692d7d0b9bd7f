package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() any {
	return &buffer{}
}}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}

// Buffer returns a reset bytes buffer from the pool. Callers must call Free after use.
func Buffer() *buffer {
	return buffersPool.Get().(*buffer) //nolint:forcetypeassert
}
