package ingestion

import "fmt"

// ExtractionError reports a document that could not be converted to plain text.
type ExtractionError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = fmt.Sprintf("%s: %s", e.Source, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", msg)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
