// Package cache provides fingerprint hashing and in-memory stores for
// computed layouts.
//
// Layout results are recomputed only when their input fingerprint changes.
// Only one layout is live per view, so the default store is a [Slot] that
// keeps exactly one entry; [Null] disables caching entirely.
//
//	store := cache.NewSlot[[]layout.Placement]()
//	key := cache.Key("placements", fingerprint)
//	if v, ok := store.Get(key); ok {
//	    return v
//	}
//	v := compute()
//	store.Set(key, v)
//
// Stores are not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package cache

// Store memoizes values by key.
type Store[T any] interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (T, bool)
	// Set stores v under key, possibly evicting other entries.
	Set(key string, v T)
	// Clear drops every entry.
	Clear()
}
