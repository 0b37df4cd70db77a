// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mdmze/advice-engine/internal/assessment"
	"github.com/mdmze/advice-engine/pkg/types"
)

var assessCmd = &cobra.Command{
	Use:   "assess [assessment-id]",
	Short: "Score a self-assessment from an answer file",
	Long: `Assess scores a completed questionnaire. Builtin assessments are dass-21,
parenting-stress, and relationship-satisfaction; a custom definition can be
supplied as a YAML file. Answers are read from a YAML file mapping question
ids to chosen option values.

Run without arguments to list the builtin assessments.`,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().String("definition", "", "YAML file with a custom assessment definition")
	assessCmd.Flags().String("answers", "", "YAML answer file (question id -> option value)")
	assessCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	defFile, _ := cmd.Flags().GetString("definition")

	if len(args) == 0 && defFile == "" {
		for _, def := range assessment.Builtins() {
			fmt.Printf("%-28s  %s (%d questions)\n", def.ID, def.Title, len(def.Questions))
		}
		return nil
	}

	var def types.Assessment
	var err error
	if defFile != "" {
		def, err = assessment.LoadDefinition(defFile)
	} else {
		def, err = assessment.ByID(args[0])
	}
	if err != nil {
		return err
	}

	answersFile, _ := cmd.Flags().GetString("answers")
	if answersFile == "" {
		return fmt.Errorf("provide --answers with a YAML answer file")
	}
	answers, err := assessment.LoadAnswers(answersFile)
	if err != nil {
		return err
	}

	result, err := assessment.Score(def, answers)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	writeAssessResult(os.Stdout, result)
	return nil
}

// writeAssessResult renders a scored assessment as text.
func writeAssessResult(w io.Writer, result types.AssessmentResult) {
	fmt.Fprintf(w, "%s\n", result.Title)
	fmt.Fprintf(w, "Score: %d / %d\n", result.TotalScore, result.MaxScore)
	fmt.Fprintf(w, "Band:  %s\n", result.Band.Label)
	if result.Band.Description != "" {
		fmt.Fprintf(w, "       %s\n", result.Band.Description)
	}
	if len(result.SubscaleScores) > 0 {
		names := make([]string, 0, len(result.SubscaleScores))
		for name := range result.SubscaleScores {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(w, "Subscales:")
		for _, name := range names {
			fmt.Fprintf(w, "  %-12s %d\n", name, result.SubscaleScores[name])
		}
	}
}
