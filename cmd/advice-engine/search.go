// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdmze/advice-engine/internal/research"
)

var searchCmd = &cobra.Command{
	Use:   "search [question...]",
	Short: "Search research databases for a parenting question",
	Long: `Search expands a parenting question into focused sub-queries, fans them
out over PubMed, DOAJ, and the curated open-access table, and prints the
deduplicated, relevance-filtered result set. When nothing survives the
filter an advisory with general guidance is printed instead.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "save the run to a YAML result file")
	searchCmd.Flags().Int("max-sources", 0, "maximum number of sources to return (default 6)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a question to search for")
	}
	query := strings.Join(args, " ")

	cfg := researchConfig()
	if n, _ := cmd.Flags().GetInt("max-sources"); n > 0 {
		cfg.MaxSources = n
	}
	agg := newAggregator(cfg)

	out, err := agg.Search(cmd.Context(), query, os.Stderr)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := research.FormatJSON(out, os.Stdout); err != nil {
			return err
		}
	} else {
		research.FormatTable(out, os.Stdout)
	}

	if path, _ := cmd.Flags().GetString("out"); path != "" {
		if err := research.WriteResultFile(path, query, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved result file: %s\n", path)
	}
	return nil
}
