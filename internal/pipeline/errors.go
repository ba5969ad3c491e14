package pipeline

// InputValidationError rejects a request before any analysis work runs.
type InputValidationError struct {
	Message string
	Cause   error
}

func (e *InputValidationError) Error() string {
	if e.Cause != nil {
		return "invalid analysis request: " + e.Message + ": " + e.Cause.Error()
	}
	return "invalid analysis request: " + e.Message
}

func (e *InputValidationError) Unwrap() error {
	return e.Cause
}
