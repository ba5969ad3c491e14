package scoring

import "fmt"

// ScoringError reports that one candidate could not be scored. The batch
// owner decides whether to degrade the candidate or abort.
type ScoringError struct {
	SourceID string
	Message  string
}

func (e *ScoringError) Error() string {
	if e.SourceID == "" {
		return "scoring failed: " + e.Message
	}
	return fmt.Sprintf("scoring failed for %q: %s", e.SourceID, e.Message)
}
