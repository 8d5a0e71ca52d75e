package constants

import "time"

// Request handling
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 30 * time.Second
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Pagination defaults
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Echo context keys
const (
	ContextTokenData = "token_data"
)

// Redis key prefixes
const (
	RedisKeyTokenBlacklist  = "token:blacklist:"
	RedisKeyAttendanceStats = "report:attendance:"
	RedisKeyTaskProgress    = "report:progress:"
)

const (
	ReportCacheTTL    = 30 * time.Second
	TokenBlacklistTTL = 24 * time.Hour
	AccessTokenExpiry = 24 * time.Hour
)

// Asynq task types and queues
const (
	TaskTypeTaskAssignedEmail = "email:task_assigned"
	QueueDefault              = "default"
	QueueMail                 = "mail"
)
