package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/resume-ranker/internal/types"
)

// Qualification cutoffs on the overall score.
const (
	qualifiedThreshold       = 70.0
	highlyQualifiedThreshold = 85.0
)

// Summarize computes distribution statistics over every scored candidate,
// always before truncation. An empty set has no statistics and returns nil.
func Summarize(candidates []types.CandidateScore) *types.SummaryStats {
	if len(candidates) == 0 {
		return nil
	}

	overalls := make([]float64, len(candidates))
	for i := range candidates {
		overalls[i] = candidates[i].Score.Overall
	}
	sort.Float64s(overalls)

	s := &types.SummaryStats{
		MinScore:           overalls[0],
		MaxScore:           overalls[len(overalls)-1],
		MedianScore:        round1(median(overalls)),
		StdDev:             round1(sampleStdDev(overalls)),
		Percentile90:       percentile(overalls, 0.9),
		SectorDistribution: make(map[string]int),
	}

	for i := range candidates {
		c := &candidates[i]
		switch o := c.Score.Overall; {
		case o >= 90:
			s.ScoreRanges.Range90To100++
		case o >= 80:
			s.ScoreRanges.Range80To89++
		case o >= 70:
			s.ScoreRanges.Range70To79++
		case o >= 60:
			s.ScoreRanges.Range60To69++
		default:
			s.ScoreRanges.Below60++
		}
		if c.Score.Overall >= qualifiedThreshold {
			s.QualifiedCount++
		}
		if c.Score.Overall >= highlyQualifiedThreshold {
			s.HighlyQualifiedCount++
		}
		if c.Sector != "" {
			s.SectorDistribution[c.Sector]++
		}
	}
	return s
}

// median of an ascending-sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// sampleStdDev is zero for fewer than two values.
func sampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(n-1))
}

// percentile uses the nearest-rank method on an ascending-sorted slice.
func percentile(sorted []float64, p float64) float64 {
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
