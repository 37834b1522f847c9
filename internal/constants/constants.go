package constants

// Pagination
const (
	DefaultPage     = 0
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Context keys
const (
	ContextKeyUser      = "user"
	ContextKeyRequestID = "request_id"
)

// Headers
const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	BearerPrefix        = "Bearer "
)

// BcryptCost is the work factor used for stored password hashes.
const BcryptCost = 12

// SigningKeyBytes is the size of a generated HMAC signing key.
const SigningKeyBytes = 32
