package handlers

// ErrorResponse is the standard error response body for echo-native
// endpoints. Huma operations use its RFC 7807 error model instead.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
