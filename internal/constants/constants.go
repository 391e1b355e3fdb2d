package constants

// Session
const (
	SessionCookieName = "pp_session"

	// Identity snapshot keys. The values are written once at login and
	// resolved from the session alone on every request.
	SessionKeyUserID   = "user_id"
	SessionKeyEmail    = "email"
	SessionKeyUsername = "username"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyEmail    = "email"
	ContextKeyUsername = "username"
)

// Validation
const (
	MinPasswordLength = 4
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
