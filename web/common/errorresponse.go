package common

// ErrorResponse is the failure envelope for every route: success is
// always false, message carries either the fixed validation text or the
// error forwarded from the device client.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
	}
}
