// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 24 * time.Hour

// FeedCachePrefix is the prefix used for cached calendar feed blobs.
const FeedCachePrefix = "feed:"

// FeedCacheTTL is the time-to-live for cached calendar feeds.
const FeedCacheTTL = 15 * time.Minute

// WeatherCacheKey holds the cached current-conditions snapshot.
const WeatherCacheKey = "weather:current"

// WeatherCacheTTL is the time-to-live for the weather snapshot.
const WeatherCacheTTL = 10 * time.Minute
