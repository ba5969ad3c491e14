// Package observability provides formatted terminal output for analysis runs.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for analysis results and verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobRequirements outputs a human-readable summary of the analyzed job.
func (p *Printer) PrintJobRequirements(req *types.JobRequirements) {
	if req == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sector:      %s\n", req.Sector))
	sb.WriteString(fmt.Sprintf("Experience:  %s years\n", formatFloat(req.MinExperienceYears)))
	sb.WriteString(fmt.Sprintf("Education:   %s\n", req.EducationRequirement))
	sb.WriteString(fmt.Sprintf("Complexity:  %.1f / 10\n", req.ComplexityScore))

	if len(req.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(req.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.RequiredSkills[i]))
		}
		if len(req.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.RequiredSkills)-maxItemsToShow))
		}
	}

	if len(req.PreferredSkills) > 0 {
		sb.WriteString("\nPreferred Skills:\n")
		count := min(len(req.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.PreferredSkills[i]))
		}
		if len(req.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.PreferredSkills)-3))
		}
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintShortlist outputs the ranked candidates with scores and matched skills.
func (p *Printer) PrintShortlist(result *types.AnalysisResult) {
	if result == nil || len(result.Candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates analyzed: %d\n\n", result.TotalCandidates))

	count := min(len(result.Candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := result.Candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", c.Rank, c.Filename))
		sb.WriteString(fmt.Sprintf("    Match: %.1f%%", c.MatchPercentage))
		if c.Degraded {
			sb.WriteString(" (degraded)")
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Skills %.1f | Experience %.1f | Education %.1f\n",
			c.Score.SkillsMatch, c.Score.ExperienceMatch, c.Score.EducationMatch))
		if len(c.Skills) > 0 {
			skills := strings.Join(c.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(result.Candidates)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintCandidate outputs one candidate's full breakdown and narrative.
func (p *Printer) PrintCandidate(c *types.CandidateScore) {
	if c == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match:       %.1f%%\n", c.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Skills:      %.1f\n", c.Score.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Experience:  %.1f (%s years)\n", c.Score.ExperienceMatch, formatFloat(c.ExperienceYears)))
	sb.WriteString(fmt.Sprintf("Education:   %.1f (%s)\n", c.Score.EducationMatch, c.EducationLevel))
	sb.WriteString(fmt.Sprintf("Sector:      %s\n", c.Sector))

	writeNarrative := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", label))
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
	}
	writeNarrative("Strengths", c.Strengths)
	writeNarrative("Weaknesses", c.Weaknesses)
	writeNarrative("Recommendations", c.Recommendations)

	p.printBox(fmt.Sprintf("#%d  %s", c.Rank, c.Filename), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysisSummary outputs corpus-level statistics for a completed run.
func (p *Printer) PrintAnalysisSummary(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidates:  %d\n", result.TotalCandidates))
	sb.WriteString(fmt.Sprintf("Average:     %.1f%%\n", result.AverageScore))
	sb.WriteString(fmt.Sprintf("Elapsed:     %dms\n", result.ProcessingTimeMS))

	if s := result.Summary; s != nil {
		sb.WriteString(fmt.Sprintf("Range:       %.1f - %.1f (median %.1f)\n", s.MinScore, s.MaxScore, s.MedianScore))
		sb.WriteString(fmt.Sprintf("Qualified:   %d (%d highly)\n", s.QualifiedCount, s.HighlyQualifiedCount))
	}

	if len(result.TopSkills) > 0 {
		skills := strings.Join(result.TopSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Top skills:  %s\n", skills))
	}

	p.printBox("ANALYSIS SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// formatFloat renders a year count without trailing zeros.
func formatFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s
}
