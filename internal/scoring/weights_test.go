package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights_Valid(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
}

func TestWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Weights)
		wantErr string
	}{
		{
			name:    "component weights must sum to one",
			mutate:  func(w *Weights) { w.Skills = 0.6 },
			wantErr: "component weights must sum to 1",
		},
		{
			name:    "required preferred split must sum to one",
			mutate:  func(w *Weights) { w.Preferred = 0.5 },
			wantErr: "required/preferred weights must sum to 1",
		},
		{
			name:    "negative weight rejected",
			mutate:  func(w *Weights) { w.Experience = -0.3 },
			wantErr: "must be a non-negative number",
		},
		{
			name:    "nan weight rejected",
			mutate:  func(w *Weights) { w.Education = math.NaN() },
			wantErr: "must be a non-negative number",
		},
		{
			name:    "penalty above range rejected",
			mutate:  func(w *Weights) { w.EducationPenalty = 150 },
			wantErr: "education penalty must be between 0 and 100",
		},
		{
			name:    "penalty below range rejected",
			mutate:  func(w *Weights) { w.EducationPenalty = -5 },
			wantErr: "education penalty must be between 0 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DefaultWeights()
			tt.mutate(&w)

			err := w.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWeights_ValidateToleratesFloatDrift(t *testing.T) {
	w := DefaultWeights()
	w.Skills = 0.1 + 0.2 // representable drift from 0.3
	w.Experience = 0.5
	w.Education = 0.2

	assert.NoError(t, w.Validate())
}

func TestNewEngine_RejectsInvalidWeights(t *testing.T) {
	w := DefaultWeights()
	w.Skills = 0.9

	e, err := NewEngine(w)

	assert.Nil(t, e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component weights must sum to 1")
}

func TestNewEngine_ExposesWeights(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, DefaultWeights(), e.Weights())
}
