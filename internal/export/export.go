// Package export renders an AnalysisResult as JSON or CSV. Both renderings
// are projections of the same in-memory candidate list, so a JSON and a CSV
// export of one result always agree on filenames and scores.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

// listSeparator joins multi-valued CSV cells (skills, narrative lists).
const listSeparator = " | "

// csvHeader is the fixed column set, one row per ranked candidate.
var csvHeader = []string{
	"Rank",
	"Filename",
	"Sector",
	"Match_Percentage",
	"Skills_Match",
	"Experience_Match",
	"Education_Match",
	"Experience_Years",
	"Education_Level",
	"Skills",
	"Strengths",
	"Weaknesses",
	"Recommendations",
}

// WriteJSON writes the full result as indented JSON.
func WriteJSON(w io.Writer, result *types.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// WriteCSV writes one row per candidate in rank order.
func WriteCSV(w io.Writer, result *types.AnalysisResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range result.Candidates {
		c := &result.Candidates[i]
		row := []string{
			strconv.Itoa(c.Rank),
			c.Filename,
			c.Sector,
			formatScore(c.MatchPercentage),
			formatScore(c.Score.SkillsMatch),
			formatScore(c.Score.ExperienceMatch),
			formatScore(c.Score.EducationMatch),
			formatScore(c.ExperienceYears),
			string(c.EducationLevel),
			strings.Join(c.Skills, listSeparator),
			strings.Join(c.Strengths, listSeparator),
			strings.Join(c.Weaknesses, listSeparator),
			strings.Join(c.Recommendations, listSeparator),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", c.Filename, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// SaveJSON writes the result as indented JSON to a file.
func SaveJSON(path string, result *types.AnalysisResult) error {
	return saveTo(path, result, WriteJSON)
}

// SaveCSV writes the result as CSV to a file.
func SaveCSV(path string, result *types.AnalysisResult) error {
	return saveTo(path, result, WriteCSV)
}

func saveTo(path string, result *types.AnalysisResult, write func(io.Writer, *types.AnalysisResult) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f, result); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// formatScore renders a score or year count with one decimal place.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
