package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		JobDescription: "Marketing manager needed with SEO and SEM.",
		Candidates: []types.CandidateScore{
			{
				Rank:            1,
				ID:              "alice.txt",
				Filename:        "alice.txt",
				MatchPercentage: 94.5,
				Skills:          []string{"SEM", "SEO"},
				ExperienceYears: 8,
				EducationLevel:  types.EducationMaster,
				Sector:          "Marketing",
				Strengths:       []string{"Strong skills alignment", "Strong experience fit"},
				Weaknesses:      []string{},
				Recommendations: []string{},
				Score: types.ScoreBreakdown{
					SkillsMatch:     100,
					ExperienceMatch: 100,
					EducationMatch:  75,
					Overall:         94.5,
				},
			},
			{
				Rank:            2,
				ID:              "bob.txt",
				Filename:        "bob.txt",
				MatchPercentage: 61.3,
				Skills:          []string{"SEO"},
				ExperienceYears: 2.5,
				EducationLevel:  types.EducationBachelor,
				Sector:          "Marketing",
				Strengths:       []string{},
				Weaknesses:      []string{"Missing required skills: SEM"},
				Recommendations: []string{"Develop missing skills: SEM"},
				Score: types.ScoreBreakdown{
					SkillsMatch:     50,
					ExperienceMatch: 50,
					EducationMatch:  100,
					Overall:         61.3,
				},
			},
		},
		TotalCandidates:  2,
		AverageScore:     77.9,
		TopSkills:        []string{"SEO", "SEM"},
		AnalysisDate:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ProcessingTimeMS: 42,
	}
}

func TestWriteJSON_IndentedAndRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("{\n  ")))

	var decoded types.AnalysisResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.TotalCandidates)
	require.Len(t, decoded.Candidates, 2)
	assert.Equal(t, "alice.txt", decoded.Candidates[0].Filename)
	assert.InDelta(t, 94.5, decoded.Candidates[0].MatchPercentage, 0.001)
}

func TestWriteCSV_ColumnsAndRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Rank", "Filename", "Sector", "Match_Percentage", "Skills_Match",
		"Experience_Match", "Education_Match", "Experience_Years",
		"Education_Level", "Skills", "Strengths", "Weaknesses", "Recommendations",
	}, records[0])

	alice := records[1]
	assert.Equal(t, "1", alice[0])
	assert.Equal(t, "alice.txt", alice[1])
	assert.Equal(t, "Marketing", alice[2])
	assert.Equal(t, "94.5", alice[3])
	assert.Equal(t, "100.0", alice[4])
	assert.Equal(t, "100.0", alice[5])
	assert.Equal(t, "75.0", alice[6])
	assert.Equal(t, "8.0", alice[7])
	assert.Equal(t, "Master", alice[8])
	assert.Equal(t, "SEM | SEO", alice[9])
	assert.Equal(t, "Strong skills alignment | Strong experience fit", alice[10])
	assert.Equal(t, "", alice[11])
	assert.Equal(t, "", alice[12])

	bob := records[2]
	assert.Equal(t, "2", bob[0])
	assert.Equal(t, "61.3", bob[3])
	assert.Equal(t, "2.5", bob[7])
	assert.Equal(t, "Missing required skills: SEM", bob[11])
	assert.Equal(t, "Develop missing skills: SEM", bob[12])
}

func TestWriteCSV_AgreesWithJSON(t *testing.T) {
	result := sampleResult()

	var jsonBuf bytes.Buffer
	require.NoError(t, WriteJSON(&jsonBuf, result))
	var decoded types.AnalysisResult
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))

	var csvBuf bytes.Buffer
	require.NoError(t, WriteCSV(&csvBuf, result))
	records, err := csv.NewReader(bytes.NewReader(csvBuf.Bytes())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, len(decoded.Candidates)+1)
	for i, c := range decoded.Candidates {
		row := records[i+1]
		assert.Equal(t, c.Filename, row[1])
		assert.InDelta(t, c.MatchPercentage, mustParseFloat(t, row[3]), 0.001)
	}
}

func TestWriteCSV_EmptyCandidateList(t *testing.T) {
	result := &types.AnalysisResult{JobDescription: "anything"}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}

func TestSaveJSONAndSaveCSV(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "result.json")
	csvPath := filepath.Join(dir, "result.csv")

	require.NoError(t, SaveJSON(jsonPath, sampleResult()))
	require.NoError(t, SaveCSV(csvPath, sampleResult()))

	jsonData, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"alice.txt"`)

	csvData, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "alice.txt")
	assert.Contains(t, string(csvData), "Rank,Filename,Sector")
}

func mustParseFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return v
}
