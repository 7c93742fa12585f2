package constvars

// Client-facing messages. Kept deliberately vague for anything the caller
// cannot act on.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientUpstreamFHIRServer            = "FHIR server returned an error"
	ErrClientResourceNotFound              = "No matching resource found"
	ErrClientInvalidPaymentSignature       = "Invalid payment signature"
	ErrClientPaymentGateway                = "Payment gateway rejected the request"
	ErrClientInvalidImageFormat            = "Invalid or missing image file"
)

// Developer-facing messages, surfaced only outside production.
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm  = "Failed to parse multipart form"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request"
	ErrDevDecodeResponse            = "Failed to decode %s response"
	ErrDevFHIRCreateResource        = "FHIR server rejected create for %s"
	ErrDevFHIRSearchResource        = "FHIR server rejected search for %s"
	ErrDevFHIRUpdateResource        = "FHIR server rejected update for %s"
	ErrDevFHIRDeleteResource        = "FHIR server rejected delete for %s"
	ErrDevFHIRResourceNotFound      = "No %s found for the given criteria"
	ErrDevIdentityTokenRequest      = "Identity service token request failed"
	ErrDevPaymentOrderCreate        = "Payment gateway order create failed"
	ErrDevPaymentSignatureMismatch  = "Computed HMAC does not match the supplied signature"
	ErrDevMinioFailedToCreateObject = "Failed to store object in bucket %s"
	ErrDevMinioFailedToListObjects  = "Failed to list objects in bucket %s"
	ErrDevRedisGetNoData            = "Failed to get data from redis with key %s"
	ErrDevRedisSetData              = "Failed to set data in redis"
	ErrDevRedisDeleteData           = "Failed to delete data from redis"
	ErrDevRedisUnlock               = "Failed to release redis lock"
	ErrDevMissingRequestID          = "Request ID missing from context"
	ErrDevInvalidInput              = "Invalid input"
)

var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s",
	"max":              "must be at most %s",
	"oneof":            "must be one of: %s",
	"url":              "must be a valid URL",
	"gt":               "must be greater than %s",
	"dose_period":      "must be morning, afternoon or night",
	"schedule_pattern": "must look like 1-0-1",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
}
