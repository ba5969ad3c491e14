// Package ranking turns a scored candidate set into the final ordered,
// truncated, and summarized analysis result.
package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Order sorts the full candidate set into final ranking order and assigns
// 1-based ranks: overall descending, skills match descending, then source
// id ascending so equal scores still order deterministically. The slice is
// sorted in place and returned.
func Order(candidates []types.CandidateScore) []types.CandidateScore {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := &candidates[i], &candidates[j]
		if a.Score.Overall != b.Score.Overall {
			return a.Score.Overall > b.Score.Overall
		}
		if a.Score.SkillsMatch != b.Score.SkillsMatch {
			return a.Score.SkillsMatch > b.Score.SkillsMatch
		}
		return a.ID < b.ID
	})
	for i := range candidates {
		candidates[i].Rank = i + 1
	}
	return candidates
}

// Truncate keeps the top n of an already ordered set. Zero, negative, or
// oversized n keeps everything.
func Truncate(ranked []types.CandidateScore, n int) []types.CandidateScore {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// Rank orders the whole set and then truncates, never the other way
// around, so rank 1 is always the global best.
func Rank(candidates []types.CandidateScore, topN int) []types.CandidateScore {
	return Truncate(Order(candidates), topN)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
