package models

// RelayResult is the uniform response body returned by both relay endpoints.
// Exactly one of Message/Error is set depending on Success.
type RelayResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK builds a success result.
func OK(message string) RelayResult {
	return RelayResult{Success: true, Message: message}
}

// Fail builds a failure result.
func Fail(errMsg string) RelayResult {
	return RelayResult{Success: false, Error: errMsg}
}
