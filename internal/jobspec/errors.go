package jobspec

// AnalysisError reports a job description that cannot be analyzed.
type AnalysisError struct {
	Message string
}

func (e *AnalysisError) Error() string {
	return "job analysis failed: " + e.Message
}
