package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultCacheTTL is how long a cached translation is served as a hit.
	DefaultCacheTTL = 300 * time.Second
	// DefaultInferenceTimeout bounds a single synchronous inference call.
	DefaultInferenceTimeout = 3 * time.Second
	// DefaultTransportTimeout bounds the rest of the HTTP exchange.
	DefaultTransportTimeout = 5 * time.Second
)

// Limit constants
const (
	// DefaultMaxCacheEntries is the maximum number of cache entries.
	DefaultMaxCacheEntries = 100
	// MaxCommandLength is the longest candidate accepted from inference.
	MaxCommandLength = 200
	// DefaultMaxTokens keeps inference responses to a single short command.
	DefaultMaxTokens = 20
	// DefaultTemperature favors consistent command generation.
	DefaultTemperature = 0.1
)

// SentinelNoCommand is the fixed string the inference model returns to
// explicitly signal that no valid command exists for the input.
const SentinelNoCommand = "I_DONT_UNDERSTAND"

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
