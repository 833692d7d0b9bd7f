//go:build !go1.23

package xiter

// Seq2 is a push iterator over pairs with the shape of iter.Seq2
type Seq2[K, V any] func(yield func(K, V) bool)
