package models

// ErrorResponse is the body returned for every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Restaurant not found"`
}

// Error messages returned by the restaurant API
const (
	MsgRestaurantNotFound        = "Restaurant not found"
	MsgPizzaOrRestaurantNotFound = "Pizza or restaurant not found"
	MsgValidationErrors          = "validation errors"
)

// NewErrorResponse creates a new error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(error, description string) OAuth2Error {
	return OAuth2Error{
		Error:            error,
		ErrorDescription: description,
	}
}
