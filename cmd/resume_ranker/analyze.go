package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/export"
	"github.com/jonathan/resume-ranker/internal/fetch"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/pipeline"
	"github.com/jonathan/resume-ranker/internal/scoring"
	"github.com/jonathan/resume-ranker/internal/taxonomy"
	"github.com/jonathan/resume-ranker/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Rank a folder of resumes against a job description",
	Long: `Loads every supported resume in --resume-dir, analyzes the job description,
scores and ranks the candidates, and prints the shortlist. The job
description comes from a file (--job), an inline string (--job-text), or a
fetched posting (--job-url).`,
	RunE: runAnalyze,
}

var (
	analyzeResumeDir  string
	analyzeJob        string
	analyzeJobText    string
	analyzeJobURL     string
	analyzeOutput     string
	analyzeCSV        string
	analyzeSkills     string
	analyzeSectors    string
	analyzeVerbose    bool
	analyzeTopN       int
	analyzeWorkers    int
	analyzeUseBrowser bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumeDir, "resume-dir", "", "Directory of resume files to rank (required)")
	analyzeCmd.Flags().StringVar(&analyzeJob, "job", "", "Path to a job description file (mutually exclusive with --job-text and --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobText, "job-text", "", "Job description as an inline string")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().IntVarP(&analyzeTopN, "top-n", "n", 0, "Shortlist length (default from config)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the full result as JSON to this path")
	analyzeCmd.Flags().StringVar(&analyzeCSV, "csv", "", "Write the ranked candidates as CSV to this path")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 0, "Parallel scoring workers (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Override the embedded skill taxonomy with this JSON file")
	analyzeCmd.Flags().StringVar(&analyzeSectors, "sectors", "", "Override the embedded sector vocabulary with this JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use a headless browser for script-rendered job pages (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print progress events and per-candidate breakdowns")

	_ = analyzeCmd.MarkFlagRequired("resume-dir")

	_ = viper.BindPFlag("top_n", analyzeCmd.Flags().Lookup("top-n"))
	_ = viper.BindPFlag("workers", analyzeCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("fetch.use_browser", analyzeCmd.Flags().Lookup("use-browser"))

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jobText, err := resolveJobText(ctx, analyzeJob, analyzeJobText, analyzeJobURL, cfg, log)
	if err != nil {
		return err
	}

	resumes, err := ingestion.NewLoader(log).LoadResumeDir(analyzeResumeDir)
	if err != nil {
		return err
	}
	log.Info("resumes loaded", zap.Int("count", len(resumes)), zap.String("dir", analyzeResumeDir))

	tax, vocab, err := taxonomy.LoadFiles(analyzeSkills, analyzeSectors)
	if err != nil {
		return fmt.Errorf("failed to load reference taxonomies: %w", err)
	}
	engine, err := scoring.NewEngine(cfg.Weights)
	if err != nil {
		return err
	}

	opts := pipeline.Options{Workers: cfg.Workers, TopSkillsK: cfg.TopSkills}
	if analyzeVerbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			if e.Stage == "candidate_scored" {
				fmt.Fprintf(os.Stderr, "scored %d/%d: %s\n", e.Current, e.Total, e.Message)
			}
		}
	}

	result, err := pipeline.New(tax, vocab, engine, log, opts).Run(ctx, &types.AnalyzeRequest{
		JobDescription: jobText,
		Resumes:        resumes,
		TopN:           cfg.TopN,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobRequirements(result.JobRequirements)
	printer.PrintShortlist(result)
	if analyzeVerbose {
		for i := range result.Candidates {
			printer.PrintCandidate(&result.Candidates[i])
		}
	}
	printer.PrintAnalysisSummary(result)

	if analyzeOutput != "" {
		if err := export.SaveJSON(analyzeOutput, result); err != nil {
			return err
		}
		log.Info("wrote JSON result", zap.String("path", analyzeOutput))
	}
	if analyzeCSV != "" {
		if err := export.SaveCSV(analyzeCSV, result); err != nil {
			return err
		}
		log.Info("wrote CSV result", zap.String("path", analyzeCSV))
	}

	return nil
}

// resolveJobText produces the job description text from exactly one of the
// file, inline, or URL sources.
func resolveJobText(ctx context.Context, jobPath, jobText, jobURL string, cfg *config.Config, log *zap.Logger) (string, error) {
	sources := 0
	for _, set := range []bool{jobPath != "", jobText != "", jobURL != ""} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return "", fmt.Errorf("one of --job, --job-text, or --job-url is required")
	}
	if sources > 1 {
		return "", fmt.Errorf("--job, --job-text, and --job-url are mutually exclusive; provide only one")
	}

	switch {
	case jobPath != "":
		return ingestion.NewLoader(log).LoadJobText(jobPath)
	case jobURL != "":
		opts := fetch.DefaultOptions()
		if cfg.Fetch.Timeout > 0 {
			opts.Timeout = cfg.Fetch.Timeout
		}
		if cfg.Fetch.UserAgent != "" {
			opts.UserAgent = cfg.Fetch.UserAgent
		}
		opts.UseBrowser = cfg.Fetch.UseBrowser
		opts.Logger = log
		return ingestion.IngestFromURL(ctx, jobURL, opts)
	default:
		return ingestion.CleanText(jobText), nil
	}
}
