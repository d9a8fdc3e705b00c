// Package toolutil provides shared helpers for careerai MCP tools.
package toolutil

import (
	"context"

	"github.com/careerai/engine/internal/engine"
	"github.com/careerai/engine/internal/engine/search"
)

// NormLocation normalises a location field: empty string → "Anywhere".
func NormLocation(loc string) string {
	if loc == "" {
		return search.DefaultLocation
	}
	return loc
}

// CacheLoadJSON tries to load a cached value of type T from the engine cache.
// Returns the decoded value and true on hit; zero value and false on miss.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	return engine.CacheGetJSON[T](ctx, key)
}

// CacheStoreJSON marshals v and stores it in the engine cache.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	engine.CacheSetJSON(ctx, key, v)
}
