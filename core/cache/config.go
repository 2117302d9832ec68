package cache

// Config holds configuration for the Redis cache.
type Config struct {
	// URL is the Redis connection URL (redis://host:port/db).
	// Empty disables caching.
	URL string `mapstructure:"url" default:""`
	// TTLSeconds is the expiration for cached entries. 0 means no expiration.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"3600"`
}
