package port

// Cache is a bounded key-value cache. Implementations are safe for
// concurrent use.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	// Set may evict the least recently used entry.
	Set(key K, value V)
	Remove(key K)
	Len() int
	// Clear drops every entry.
	Clear()
}
