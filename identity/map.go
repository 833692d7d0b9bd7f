package identity

import (
	"github.com/ydb-platform/ydb-go-rowset/query"
)

var _ query.IdentityCache[*struct{}] = (*Map[int, *struct{}])(nil)

// Keyer is implemented by entities which know their logical key (usually a primary key)
type Keyer[K comparable] interface {
	IdentityKey() K
}

// Map is an identity cache keyed by a logical key of T.
//
// The key function must be consistent with the entity identity: two values
// of the same entity must give equal keys, values of different entities
// must give different keys. Map doesn't check it.
//
// Map is not safe for concurrent use.
type Map[K comparable, T any] struct {
	key    func(v T) K
	values map[K]T
}

// New makes Map which uses key to get the logical key of values
func New[K comparable, T any](key func(v T) K) *Map[K, T] {
	return &Map[K, T]{
		key:    key,
		values: make(map[K]T),
	}
}

// Of makes Map for entities implementing Keyer
func Of[K comparable, T Keyer[K]]() *Map[K, T] {
	return New[K, T](func(v T) K {
		return v.IdentityKey()
	})
}

func (m *Map[K, T]) Load(v T) (canonical T, ok bool) {
	canonical, ok = m.values[m.key(v)]

	return canonical, ok
}

func (m *Map[K, T]) Store(v T) {
	m.values[m.key(v)] = v
}

// Key returns the logical key of v
func (m *Map[K, T]) Key(v T) any {
	return m.key(v)
}

// Get returns instance by key
func (m *Map[K, T]) Get(key K) (v T, ok bool) {
	v, ok = m.values[key]

	return v, ok
}

func (m *Map[K, T]) Delete(key K) {
	delete(m.values, key)
}

func (m *Map[K, T]) Len() int {
	return len(m.values)
}

// Range calls f for each instance until f returns false. Order is not specified.
func (m *Map[K, T]) Range(f func(key K, v T) bool) {
	for k, v := range m.values {
		if !f(k, v) {
			return
		}
	}
}

func (m *Map[K, T]) Clear() {
	clear(m.values)
}
