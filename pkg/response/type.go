package response

// Resp is the JSON envelope every API response uses. RequestID echoes the
// X-Request-ID of the call so clients can quote it when reporting a reply.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
