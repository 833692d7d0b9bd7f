//go:build go1.23

package xiter

import (
	"iter"
)

// Seq2 is iter.Seq2, so values can be ranged over with for-range
type Seq2[K, V any] iter.Seq2[K, V]
