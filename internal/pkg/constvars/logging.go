package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingEndpointKey   = "endpoint"
	LoggingMethodKey     = "method"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingErrorTypeKey  = "error_type"

	LoggingUHIDKey         = "uhid"
	LoggingResourceTypeKey = "resource_type"
	LoggingResourceIDKey   = "resource_id"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingBucketKey       = "bucket"
	LoggingObjectKey       = "object_name"

	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
)

// CONTEXT_REQUEST_ID_KEY carries the request ID minted (or forwarded) by the
// request ID middleware.
type contextKey string

const CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
