package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse generic confirmation body for mutations that return no
// resource.
type MessageResponse struct {
	Message string `json:"message"`
}
