package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeInput is one resume supplied to the engine: already-extracted plain
// text plus a stable source identifier (typically the filename).
type ResumeInput struct {
	ID   string `json:"id" validate:"required,min=1"`
	Text string `json:"text"`
}

// AnalyzeRequest is the single synchronous engine entry payload.
type AnalyzeRequest struct {
	JobDescription string        `json:"job_description" validate:"required,min=1"`
	Resumes        []ResumeInput `json:"resumes" validate:"required,min=1,dive"`
	TopN           int           `json:"top_n" validate:"required,gt=0"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SingleRankRequest scores one resume against one job description.
type SingleRankRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=1"`
	ResumeID       string `json:"resume_id,omitempty"`
	ResumeText     string `json:"resume_text,omitempty"`
}

// Validate validates the SingleRankRequest using the validator.
func (r *SingleRankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
