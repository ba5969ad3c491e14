package ranking

import (
	"sort"
	"time"

	"github.com/jonathan/resume-ranker/internal/types"
)

// DefaultTopSkills caps the aggregated top_skills list.
const DefaultTopSkills = 10

// Assembler builds the final AnalysisResult from one run's scored set.
type Assembler struct {
	// TopSkillsK caps the top_skills list; zero means DefaultTopSkills.
	TopSkillsK int
}

// Assemble orders the full candidate set, computes whole-set aggregates,
// then truncates to topN. Aggregates reflect every scored candidate,
// including those the truncation discards.
func (a Assembler) Assemble(jobDescription string, req *types.JobRequirements, scored []types.CandidateScore, topN int, elapsed time.Duration) *types.AnalysisResult {
	ranked := Order(scored)

	avg := 0.0
	if len(ranked) > 0 {
		for i := range ranked {
			avg += ranked[i].Score.Overall
		}
		avg = round1(avg / float64(len(ranked)))
	}

	return &types.AnalysisResult{
		JobDescription:   jobDescription,
		JobRequirements:  req,
		Candidates:       Truncate(ranked, topN),
		TotalCandidates:  len(ranked),
		AverageScore:     avg,
		TopSkills:        topSkills(ranked, a.TopSkillsK),
		Summary:          Summarize(ranked),
		AnalysisDate:     time.Now().UTC(),
		ProcessingTimeMS: elapsed.Milliseconds(),
	}
}

// topSkills returns the k most frequent canonical skills across the whole
// candidate set. Frequency ties break toward the skill encountered first
// scanning candidates in rank order, each candidate's skills already
// sorted.
func topSkills(ranked []types.CandidateScore, k int) []string {
	if k <= 0 {
		k = DefaultTopSkills
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i := range ranked {
		for _, s := range ranked[i].Skills {
			if _, seen := counts[s]; !seen {
				firstSeen[s] = len(firstSeen)
			}
			counts[s]++
		}
	}

	names := make([]string, 0, len(counts))
	for s := range counts {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return firstSeen[names[i]] < firstSeen[names[j]]
	})
	if len(names) > k {
		names = names[:k]
	}
	return names
}
