// Package pipeline orchestrates one analysis request end to end: validate
// the request, analyze the job description, extract and score every
// resume in parallel, then rank and assemble the result.
package pipeline

import (
	"context"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/jobspec"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/taxonomy"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Scorer grades one candidate against one job and explains the result.
// *scoring.Engine is the production implementation.
type Scorer interface {
	Score(f *types.ResumeFeatures, req *types.JobRequirements) (types.ScoreBreakdown, error)
	Explain(f *types.ResumeFeatures, req *types.JobRequirements, b types.ScoreBreakdown) scoring.Narrative
}

// Options tune one pipeline instance.
type Options struct {
	// Workers caps parallel extract+score goroutines; zero means GOMAXPROCS.
	Workers int
	// TopSkillsK caps the aggregated top_skills list; zero means the
	// ranking default.
	TopSkillsK int
	// OnProgress, when set, receives stage events during Run.
	OnProgress ProgressCallback
}

// Pipeline wires the extractor, job analyzer, scorer, and assembler into
// one reusable engine. Safe for concurrent Run calls.
type Pipeline struct {
	extractor *extraction.Extractor
	analyzer  *jobspec.Analyzer
	scorer    Scorer
	opts      Options
	log       *zap.Logger
}

// New builds a pipeline over compiled reference data. A nil logger
// disables pipeline logging.
func New(tax *taxonomy.Taxonomy, vocab *taxonomy.Vocabulary, scorer Scorer, log *zap.Logger, opts Options) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		extractor: extraction.New(tax, vocab),
		analyzer:  jobspec.New(tax, vocab),
		scorer:    scorer,
		opts:      opts,
		log:       log,
	}
}

// Run executes the full analysis. Request problems return an
// InputValidationError before any work starts; a scoring failure degrades
// that one candidate to a zero score and the batch continues.
func (p *Pipeline) Run(ctx context.Context, req *types.AnalyzeRequest) (*types.AnalysisResult, error) {
	start := time.Now()

	if err := p.validate(req); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jobReq, err := p.analyzer.Analyze(req.JobDescription)
	if err != nil {
		return nil, &InputValidationError{Message: "job description could not be analyzed", Cause: err}
	}
	p.emit(ProgressEvent{Stage: "job_analyzed", Message: "job description analyzed",
		Total: len(req.Resumes)})
	p.log.Debug("job analyzed",
		zap.Int("required_skills", len(jobReq.RequiredSkills)),
		zap.Int("preferred_skills", len(jobReq.PreferredSkills)),
		zap.Float64("min_experience_years", jobReq.MinExperienceYears),
		zap.String("sector", jobReq.Sector))

	scored := make([]types.CandidateScore, len(req.Resumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for i := range req.Resumes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := req.Resumes[i]
			scored[i] = p.scoreOne(r.ID, r.Text, jobReq)
			p.emit(ProgressEvent{Stage: "candidate_scored", Message: r.ID,
				Current: i + 1, Total: len(req.Resumes)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := ranking.Assembler{TopSkillsK: p.opts.TopSkillsK}.
		Assemble(req.JobDescription, jobReq, scored, req.TopN, time.Since(start))
	p.emit(ProgressEvent{Stage: "assembled", Message: "result assembled",
		Current: len(req.Resumes), Total: len(req.Resumes)})
	p.log.Info("analysis complete",
		zap.Int("candidates", result.TotalCandidates),
		zap.Int("returned", len(result.Candidates)),
		zap.Float64("average_score", result.AverageScore),
		zap.Int64("elapsed_ms", result.ProcessingTimeMS))
	return result, nil
}

// RankSingle scores one resume against one job description outside a
// batch. The returned candidate carries rank 1, a ranking of one.
func (p *Pipeline) RankSingle(ctx context.Context, jobDescription, resumeID, resumeText string) (*types.CandidateScore, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &InputValidationError{Message: "job description must not be empty"}
	}
	if strings.TrimSpace(resumeID) == "" {
		return nil, &InputValidationError{Message: "resume id must not be empty"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jobReq, err := p.analyzer.Analyze(jobDescription)
	if err != nil {
		return nil, &InputValidationError{Message: "job description could not be analyzed", Cause: err}
	}
	c := p.scoreOne(resumeID, resumeText, jobReq)
	c.Rank = 1
	return &c, nil
}

// scoreOne runs extraction, scoring, and explanation for one resume. A
// scoring failure is logged and degrades the candidate instead of
// failing the batch.
func (p *Pipeline) scoreOne(id, text string, jobReq *types.JobRequirements) types.CandidateScore {
	f := p.extractor.Extract(id, text)

	b, err := p.scorer.Score(f, jobReq)
	if err != nil {
		p.log.Warn("candidate degraded: scoring failed",
			zap.String("resume_id", id), zap.Error(err))
		return degradedCandidate(id, f)
	}
	n := p.scorer.Explain(f, jobReq, b)

	return types.CandidateScore{
		ID:              id,
		Filename:        id,
		MatchPercentage: b.Overall,
		Skills:          f.Skills,
		ExperienceYears: f.ExperienceYears,
		EducationLevel:  f.EducationLevel,
		Sector:          f.Sector,
		Strengths:       n.Strengths,
		Weaknesses:      n.Weaknesses,
		Recommendations: n.Recommendations,
		Score:           b,
	}
}

// degradedCandidate carries whatever extraction produced, with every
// score zeroed and the degraded flag set.
func degradedCandidate(id string, f *types.ResumeFeatures) types.CandidateScore {
	c := types.CandidateScore{
		ID:              id,
		Filename:        id,
		Skills:          []string{},
		EducationLevel:  types.EducationNone,
		Sector:          taxonomy.SectorUnknown,
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
		Degraded:        true,
	}
	if f != nil {
		c.Skills = f.Skills
		c.ExperienceYears = f.ExperienceYears
		c.EducationLevel = f.EducationLevel
		c.Sector = f.Sector
	}
	return c
}

func (p *Pipeline) workers() int {
	if p.opts.Workers > 0 {
		return p.opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// validate applies the request's own field rules plus the cross-field
// rules the tags cannot express.
func (p *Pipeline) validate(req *types.AnalyzeRequest) error {
	if req == nil {
		return &InputValidationError{Message: "nil request"}
	}
	if err := req.Validate(); err != nil {
		return &InputValidationError{Message: "request validation failed", Cause: err}
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return &InputValidationError{Message: "job description must not be blank"}
	}
	seen := make(map[string]struct{}, len(req.Resumes))
	for _, r := range req.Resumes {
		if strings.TrimSpace(r.ID) == "" {
			return &InputValidationError{Message: "resume id must not be blank"}
		}
		if _, dup := seen[r.ID]; dup {
			return &InputValidationError{Message: "duplicate resume id: " + r.ID}
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}
