// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdmze/advice-engine/internal/chat"
	"github.com/mdmze/advice-engine/internal/server"
	"github.com/mdmze/advice-engine/internal/store"
	"github.com/mdmze/advice-engine/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes the engine over HTTP: research aggregation, chat, the
article store, and assessment scoring. The chat endpoint requires an
OpenAI API key; without one the endpoint returns errors but the rest of
the API works.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("store", "", "storage backend: sqlite or memory (default memory, seeded)")
	serveCmd.Flags().String("db", "", "SQLite database path (default ./advice-engine.db)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = viper.GetString("server.addr")
	}
	if addr == "" {
		addr = ":8080"
	}

	backend, _ := cmd.Flags().GetString("store")
	if backend == "" {
		backend = viper.GetString("store.backend")
	}
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("store.path")
	}
	if backend == "sqlite" && path == "" {
		path = "advice-engine.db"
	}

	repo, err := store.New(types.StoreConfig{Backend: backend, Path: path, Seed: backend != "sqlite"})
	if err != nil {
		return err
	}
	defer repo.Close()

	cfg := researchConfig()
	agg := newAggregator(cfg)

	srv := &server.Server{
		Aggregator: agg,
		Session: &chat.Session{
			Aggregator: agg,
			Completer: &chat.OpenAIClient{
				Client: &http.Client{Timeout: cfg.Timeout},
				APIKey: secretDefault("openai-api-key", viper.GetString("chat.api_key")),
				Config: types.ChatConfig{
					Model:       viper.GetString("chat.model"),
					MaxTokens:   viper.GetInt("chat.max_tokens"),
					Temperature: viper.GetFloat64("chat.temperature"),
				},
			},
			Warnings: os.Stderr,
		},
		Repo: repo,
	}

	fmt.Fprintf(os.Stderr, "Listening on %s\n", addr)
	return http.ListenAndServe(addr, srv.Router())
}
