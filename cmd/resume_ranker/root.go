package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/logger"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "resume_ranker",
		Short: "Rank resumes against a job description",
		Long: `resume_ranker extracts structured features from raw resume text, scores
each candidate against a job description, and produces a ranked, explained
shortlist. Resumes load from local files (.txt, .md, .pdf, .docx, .html) and
job postings from files, inline text, or fetched URLs.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is resume-ranker.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// loadConfig layers defaults, the optional config file, RANKER_ environment
// variables, and any flags commands bound through viper.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger builds the process logger from the bound debug/json flags.
func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}
