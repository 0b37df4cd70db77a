// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/mdmze/advice-engine/internal/store"
	"github.com/mdmze/advice-engine/pkg/types"
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Manage the article library",
	Long: `Articles manages the content library through the draft/featured/archived
workflow. The default backend is SQLite at ./advice-engine.db; pass
--store memory for an ephemeral seeded store.`,
}

func init() {
	articlesCmd.PersistentFlags().String("store", "", "storage backend: sqlite or memory (default sqlite)")
	articlesCmd.PersistentFlags().String("db", "", "SQLite database path (default ./advice-engine.db)")

	articlesCmd.AddCommand(articlesListCmd)
	articlesCmd.AddCommand(articlesAddCmd)
	articlesCmd.AddCommand(articlesFeatureCmd)
	articlesCmd.AddCommand(articlesArchiveCmd)
	articlesCmd.AddCommand(articlesStatsCmd)

	rootCmd.AddCommand(articlesCmd)
}

func openRepo(cmd *cobra.Command) (store.Repository, error) {
	backend, _ := cmd.Flags().GetString("store")
	if backend == "" {
		backend = viper.GetString("store.backend")
	}
	if backend == "" {
		backend = "sqlite"
	}

	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("store.path")
	}
	if path == "" {
		path = "advice-engine.db"
	}

	return store.New(types.StoreConfig{
		Backend: backend,
		Path:    path,
		Seed:    backend == "memory",
	})
}

var articlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		status, _ := cmd.Flags().GetString("status")
		limit, _ := cmd.Flags().GetInt("limit")

		articles, err := repo.ByStatus(cmd.Context(), types.ArticleStatus(status), limit)
		if err != nil {
			return err
		}
		if len(articles) == 0 {
			fmt.Println("No articles.")
			return nil
		}
		for _, a := range articles {
			fmt.Printf("%-40s  %-10s  %s\n", a.ID, a.Status, a.Title)
		}
		return nil
	},
}

var articlesAddCmd = &cobra.Command{
	Use:   "add [article.yaml]",
	Short: "Add an article from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("provide one article YAML file")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading article file: %w", err)
		}
		var a types.Article
		if err := yaml.Unmarshal(data, &a); err != nil {
			return fmt.Errorf("parsing article file: %w", err)
		}
		if a.Title == "" {
			return fmt.Errorf("article has no title")
		}

		repo, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		created, err := repo.Create(cmd.Context(), a)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s (%s)\n", created.ID, created.Status)
		return nil
	},
}

var articlesFeatureCmd = &cobra.Command{
	Use:   "feature [article-id]",
	Short: "Move an article to featured",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("provide one article id")
		}
		repo, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := repo.UpdateStatus(cmd.Context(), args[0], types.StatusFeatured); err != nil {
			return err
		}
		fmt.Printf("Featured %s\n", args[0])
		return nil
	},
}

var articlesArchiveCmd = &cobra.Command{
	Use:   "archive [article-id]",
	Short: "Archive an article, or the oldest featured articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		oldest, _ := cmd.Flags().GetInt("oldest")
		if oldest > 0 {
			n, err := repo.ArchiveOldestFeatured(cmd.Context(), oldest)
			if err != nil {
				return err
			}
			fmt.Printf("Archived %d featured article(s)\n", n)
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("provide an article id or --oldest N")
		}
		if err := repo.UpdateStatus(cmd.Context(), args[0], types.StatusArchived); err != nil {
			return err
		}
		fmt.Printf("Archived %s\n", args[0])
		return nil
	},
}

var articlesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show article counts per status",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo(cmd)
		if err != nil {
			return err
		}
		defer repo.Close()

		stats, err := repo.Stats(cmd.Context())
		if err != nil {
			return err
		}
		statuses := make([]string, 0, len(stats))
		for s := range stats {
			statuses = append(statuses, string(s))
		}
		sort.Strings(statuses)
		for _, s := range statuses {
			fmt.Printf("%-10s %d\n", s, stats[types.ArticleStatus(s)])
		}
		return nil
	},
}

func init() {
	articlesListCmd.Flags().String("status", "featured", "status to list: draft, featured, or archived")
	articlesListCmd.Flags().Int("limit", 10, "maximum number of articles to list")
	articlesArchiveCmd.Flags().Int("oldest", 0, "archive the N oldest featured articles")
}
