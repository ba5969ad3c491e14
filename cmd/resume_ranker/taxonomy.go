package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/taxonomy"
	refschemas "github.com/jonathan/resume-ranker/schemas"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect and validate the reference taxonomies",
}

var taxonomyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print sectors and per-category skill counts",
	RunE:  runTaxonomyList,
}

var (
	validateSkillsPath  string
	validateSectorsPath string
)

var taxonomyValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Schema-validate external taxonomy files",
	Long: `Validates a skill taxonomy and a sector vocabulary JSON file against their
schemas without building an engine from them.`,
	RunE: runTaxonomyValidate,
}

func init() {
	taxonomyValidateCmd.Flags().StringVar(&validateSkillsPath, "skills", "", "Path to a skill taxonomy JSON file")
	taxonomyValidateCmd.Flags().StringVar(&validateSectorsPath, "sectors", "", "Path to a sector vocabulary JSON file")

	taxonomyCmd.AddCommand(taxonomyListCmd)
	taxonomyCmd.AddCommand(taxonomyValidateCmd)
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomyList(cmd *cobra.Command, _ []string) error {
	tax, vocab, err := taxonomy.Default()
	if err != nil {
		return fmt.Errorf("failed to load reference taxonomies: %w", err)
	}
	out := cmd.OutOrStdout()

	categories := tax.Categories()
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "Skills: %d\n", tax.Len())
	for _, name := range names {
		fmt.Fprintf(out, "  %-24s %d\n", name, categories[name])
	}

	sectors := vocab.Sectors()
	fmt.Fprintf(out, "\nSectors: %d\n", len(sectors))
	for _, s := range sectors {
		fmt.Fprintf(out, "  %-24s %d keywords\n", s.Name, len(s.Keywords))
	}

	return nil
}

func runTaxonomyValidate(cmd *cobra.Command, _ []string) error {
	if validateSkillsPath == "" && validateSectorsPath == "" {
		return fmt.Errorf("at least one of --skills or --sectors is required")
	}
	out := cmd.OutOrStdout()

	failures := 0
	if validateSkillsPath != "" {
		if err := schemas.ValidateFile(refschemas.SkillTaxonomy, validateSkillsPath); err != nil {
			failures++
			fmt.Fprintf(out, "%s: %v\n", validateSkillsPath, err)
		} else {
			fmt.Fprintf(out, "%s: valid skill taxonomy\n", validateSkillsPath)
		}
	}
	if validateSectorsPath != "" {
		if err := schemas.ValidateFile(refschemas.SectorVocabulary, validateSectorsPath); err != nil {
			failures++
			fmt.Fprintf(out, "%s: %v\n", validateSectorsPath, err)
		} else {
			fmt.Fprintf(out, "%s: valid sector vocabulary\n", validateSectorsPath)
		}
	}

	if failures > 0 {
		return fmt.Errorf("validation failed for %d file(s)", failures)
	}
	return nil
}
