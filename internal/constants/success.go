package constants

import "net/http"

// APISuccess represents a standardized API success response with code, HTTP
// status and an optional envelope message.
type APISuccess struct {
	Code    string
	Status  int
	Message string
}

// Link-related success responses
var (
	SuccessLinkCreated = APISuccess{
		Code:    CodeLinkCreated,
		Status:  http.StatusCreated,
		Message: MsgLinkCreated,
	}
	SuccessLinksListed = APISuccess{
		Code:   CodeLinkListed,
		Status: http.StatusOK,
	}
	SuccessStatsFound = APISuccess{
		Code:   CodeStatsFound,
		Status: http.StatusOK,
	}
	SuccessLinkDeleted = APISuccess{
		Code:    CodeLinkDeleted,
		Status:  http.StatusOK,
		Message: MsgLinkDeleted,
	}
)
