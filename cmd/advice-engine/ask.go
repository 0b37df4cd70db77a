// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdmze/advice-engine/internal/chat"
	"github.com/mdmze/advice-engine/pkg/types"
)

var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Ask a parenting question and get a research-cited answer",
	Long: `Ask runs the full pipeline: research aggregation, prompt construction,
and model completion. Personal questions ("my toddler...") get an
empathetic answer; general questions get a structured answer citing the
retrieved research by number. Sources and follow-up questions are printed
after the answer.`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("model", "", "chat model (default gpt-4)")
	askCmd.Flags().Bool("no-sources", false, "suppress the source listing")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a question to ask")
	}
	question := strings.Join(args, " ")

	apiKey := secretDefault("openai-api-key", viper.GetString("chat.api_key"))
	if apiKey == "" {
		return fmt.Errorf("no OpenAI API key: add .secrets/openai-api-key or set ADVICE_ENGINE_CHAT.API_KEY")
	}

	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("chat.model")
	}

	cfg := researchConfig()
	session := &chat.Session{
		Aggregator: newAggregator(cfg),
		Completer: &chat.OpenAIClient{
			Client: &http.Client{Timeout: cfg.Timeout},
			APIKey: apiKey,
			Config: types.ChatConfig{
				Model:       model,
				MaxTokens:   viper.GetInt("chat.max_tokens"),
				Temperature: viper.GetFloat64("chat.temperature"),
			},
		},
		Warnings: os.Stderr,
	}

	turn, err := session.Ask(cmd.Context(), question)
	if err != nil {
		return err
	}

	fmt.Println(turn.Answer)

	noSources, _ := cmd.Flags().GetBool("no-sources")
	if !noSources && len(turn.Sources) > 0 {
		fmt.Println("\nSources:")
		for i, r := range turn.Sources {
			fmt.Printf("  %d. %s (%s, %s)\n     %s\n", i+1, r.Title, r.Journal, r.Year, r.URL)
		}
	}
	if len(turn.FollowUps) > 0 {
		fmt.Println("\nYou could also ask:")
		for _, q := range turn.FollowUps {
			fmt.Printf("  - %s\n", q)
		}
	}
	return nil
}
