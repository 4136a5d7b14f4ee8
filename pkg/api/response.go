package api

// FailureResponse is the standard failure envelope returned on every
// error path, regardless of which endpoint produced it.
type FailureResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewFailureResponse(message string) FailureResponse {
	return FailureResponse{
		Success: false,
		Message: message,
	}
}
