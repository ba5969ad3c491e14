package types

import "time"

// AnalysisResult is the final record produced by one analysis run. It owns its
// candidate list, is produced once, and is never mutated after assembly.
// JobDescription echoes the exact input string with no normalization applied.
type AnalysisResult struct {
	JobDescription   string           `json:"job_description"`
	JobRequirements  *JobRequirements `json:"job_requirements,omitempty"`
	Candidates       []CandidateScore `json:"candidates"`
	TotalCandidates  int              `json:"total_candidates"`
	AverageScore     float64          `json:"average_score"`
	TopSkills        []string         `json:"top_skills"`
	Summary          *SummaryStats    `json:"summary,omitempty"`
	AnalysisDate     time.Time        `json:"analysis_date"`
	ProcessingTimeMS int64            `json:"processing_time_ms"`
}

// SummaryStats holds corpus-level score statistics computed over all scored
// candidates, before any top-N truncation.
type SummaryStats struct {
	MinScore     float64 `json:"min_score"`
	MaxScore     float64 `json:"max_score"`
	MedianScore  float64 `json:"median_score"`
	StdDev       float64 `json:"std_dev"`
	Percentile90 float64 `json:"percentile_90"`
	// ScoreRanges counts candidates per overall-score band.
	ScoreRanges ScoreRangeCounts `json:"score_ranges"`
	// QualifiedCount counts candidates with overall >= 70,
	// HighlyQualifiedCount those with overall >= 85.
	QualifiedCount       int            `json:"qualified_count"`
	HighlyQualifiedCount int            `json:"highly_qualified_count"`
	SectorDistribution   map[string]int `json:"sector_distribution"`
}

// ScoreRangeCounts buckets candidates by overall score band.
type ScoreRangeCounts struct {
	Range90To100 int `json:"90-100"`
	Range80To89  int `json:"80-89"`
	Range70To79  int `json:"70-79"`
	Range60To69  int `json:"60-69"`
	Below60      int `json:"below-60"`
}
