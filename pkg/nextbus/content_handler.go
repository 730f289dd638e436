package nextbus

import "strings"

const errorElement = "Error"

// ContentHandler receives the element events of a single feed document in document order.
// Handlers keep per document state and must not be reused.
type ContentHandler interface {
	StartElement(name string, attributes Attributes) error
	Characters(content string)
	EndElement(name string)

	// FeedError returns the Error reported by the document, if any
	FeedError() *Error
}

// errorCollector picks up the Error element that any response type may carry.
// Handlers embed it and forward every event to it.
type errorCollector struct {
	currentError *Error

	inError bool
	text    strings.Builder
}

func (e *errorCollector) startError(name string, attributes Attributes) bool {
	if name != errorElement {
		return false
	}

	e.currentError = NewError(attributes)
	e.inError = true
	e.text.Reset()

	return true
}

func (e *errorCollector) Characters(content string) {
	if e.inError {
		e.text.WriteString(content)
	}
}

func (e *errorCollector) EndElement(name string) {
	if name == errorElement && e.inError {
		e.currentError.SetMessage(strings.TrimSpace(e.text.String()))
		e.inError = false
	}
}

func (e *errorCollector) FeedError() *Error {
	return e.currentError
}
