package nextbus

import "strings"

const DefaultErrorMessage = "There was an error processing your request"

// Error is an application error reported inside an otherwise well formed feed document.
// It is returned in place of the expected result.
type Error struct {
	// ShouldRetry is kept as the raw "true"/"false" string from the feed
	ShouldRetry string `groups:"basic"`
	Message     string `groups:"basic"`
}

func NewError(attributes Attributes) *Error {
	return &Error{
		ShouldRetry: attributes.Get("shouldRetry"),
		Message:     DefaultErrorMessage,
	}
}

func (e *Error) SetMessage(message string) {
	if message == "" {
		e.Message = DefaultErrorMessage
		return
	}

	e.Message = message
}

func (e *Error) Retryable() bool {
	return strings.EqualFold(e.ShouldRetry, "true")
}

func (e *Error) Error() string {
	return e.Message
}
