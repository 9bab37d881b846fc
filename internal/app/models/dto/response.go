package dto

// APIResponse is the envelope every endpoint returns: either Data or Error
// is set.
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse represents a standard success response with a user-facing
// message
type SuccessResponse struct {
	Message string `json:"message"`
}
