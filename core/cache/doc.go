// Package cache provides an optional Redis cache for canonical word lookups.
//
// Reads are cache-aside: handlers try the cache first and fall back to the
// database. The merge and deletion engines invalidate cached headwords after
// every successful mutation so stale canonical records are never served.
//
// The cache is optional. When Redis is not configured the services receive a
// nil *Cache and every method becomes a no-op miss.
package cache
