package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyOperator  contextKey = "operator"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage   = "page"
	RequestParamLimit  = "limit"
	RequestParamType   = "type"
	RequestParamStatus = "status"
	RequestParamRole   = "role"
	RequestParamSearch = "q"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	RoomStatusAvailable = "Available"
	RoomStatusBooked    = "Booked"
)

const (
	IDStrategySequence = "sequence"
	IDStrategyUUID     = "uuid"
)

const (
	IDPrefixBooking  = "B"
	IDPrefixCustomer = "C"
	IDPrefixBill     = "BL"
	IDPrefixStaff    = "S"
)

const (
	// StayDateFormat is dd-mm-yyyy, the format operators type check-in/check-out dates in.
	StayDateFormat = "02-01-2006"
	// RecordDateFormat stamps registration, joining and billing dates.
	RecordDateFormat = "2006-01-02"
	DateFormat       = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelStorageScopeName    = "storage"
	OtelConsoleScopeName    = "console"

	OtelTableAttributeKey = "table"
	OtelS3ScopeName       = "s3"
)

// Cache key prefixes. Writers clear a whole prefix, readers key by query.
const (
	CachePrefixRoom     = "room:"
	CachePrefixBooking  = "booking:"
	CachePrefixCustomer = "customer:"
	CachePrefixStaff    = "staff:"
	CachePrefixBill     = "bill:"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventRoomsReconciled  = "rooms.reconciled"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderOperator           = "X-Operator"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
