// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis session cache keys.
const SessionCachePrefix = "session:"

// SessionTTL is the time-to-live for session cache entries.
const SessionTTL = 12 * time.Hour
