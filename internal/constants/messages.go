package constants

// Messages returned in the "message" field of the response envelope.
const (
	// Common messages
	MsgInvalidRequestBody = "Invalid request body"
	MsgInternalError      = "An internal error occurred"
	MsgUnauthorized       = "Unauthorized"
	MsgRouteNotFound      = "Route not found"

	// Shortener-specific messages
	MsgInvalidURL   = "Invalid URL format"
	MsgInvalidCode  = "Custom code must be 6-8 alphanumeric characters"
	MsgCodeInUse    = "Custom code already in use"
	MsgLinkNotFound = "Link not found"

	MsgLinkCreated = "URL shortened successfully"
	MsgLinkDeleted = "Link deleted successfully"
)
