package constants

// Error codes attached to APIError values. They identify the failure in logs
// and keep handler switch statements readable.
const (
	// Common error codes
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"

	// Shortener-specific codes
	CodeInvalidURL    = "INVALID_URL"
	CodeInvalidCode   = "INVALID_CODE"
	CodeCodeInUse     = "CODE_IN_USE"
	CodeCodeExhausted = "CODE_EXHAUSTED"
	CodeLinkNotFound  = "LINK_NOT_FOUND"

	// Success codes
	CodeLinkCreated = "LINK_CREATED"
	CodeLinkListed  = "LINKS_LISTED"
	CodeLinkDeleted = "LINK_DELETED"
	CodeStatsFound  = "STATS_FOUND"
)
