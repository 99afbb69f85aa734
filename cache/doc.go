// Package cache provides a generic fixed-capacity LRU cache.
//
// The render pipeline uses it to keep GPU-resident images: capacity-bounded,
// least-recently-used eviction, with an eviction hook so the owner can
// release GPU resources when an entry falls out.
//
// The cache is not safe for concurrent use. The compositor drives frames
// strictly sequentially and owns its caches exclusively, so callers that
// share a cache across goroutines must add their own synchronization.
package cache
