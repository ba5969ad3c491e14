package taxonomy

import "fmt"

// LoadError reports reference data that is missing, unreadable, malformed, or
// schema-invalid. It is fatal at process initialization: the engine must not
// serve requests without loaded taxonomies.
type LoadError struct {
	Source  string // "skills" or "sectors", or a file path
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy load failed (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy load failed (%s): %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
