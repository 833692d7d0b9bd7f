package query

// IdentityCache maps a materialized value to the canonical instance of the same
// logical entity. Equality is defined by the cache (usually a primary key), not by
// reference. IdentityCache is not safe for concurrent use.
type IdentityCache[T any] interface {
	// Load returns the canonical instance equal to v, if any
	Load(v T) (canonical T, ok bool)
	// Store makes v the canonical instance for its key
	Store(v T)
	// Key returns the logical key of v. Keys must be comparable.
	Key(v T) any
}
