// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists articles through the draft/featured/archived
// workflow. Two backends implement the same Repository interface: an
// in-process memory store for development and a SQLite store for
// deployments that need durability.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdmze/advice-engine/pkg/types"
)

// ErrNotFound is returned when no article has the requested id.
var ErrNotFound = errors.New("article not found")

// Repository is the article storage contract.
type Repository interface {
	// Create stores a new article. A blank ID is minted; blank status
	// defaults to draft; reference ids and timestamps are filled in.
	Create(ctx context.Context, a types.Article) (types.Article, error)

	// ByStatus returns up to limit articles in the given status, newest
	// first by creation time. A non-positive limit uses the default (10).
	ByStatus(ctx context.Context, status types.ArticleStatus, limit int) ([]types.Article, error)

	// ByID returns the article with the given id, or ErrNotFound.
	ByID(ctx context.Context, id string) (types.Article, error)

	// UpdateStatus moves an article to a new workflow status.
	UpdateStatus(ctx context.Context, id string, status types.ArticleStatus) error

	// ArchiveOldestFeatured archives up to n featured articles, oldest
	// first, and returns how many were archived.
	ArchiveOldestFeatured(ctx context.Context, n int) (int, error)

	// Stats returns the article count per status.
	Stats(ctx context.Context) (map[types.ArticleStatus]int, error)

	Close() error
}

const defaultListLimit = 10

// New builds a Repository from configuration. Supported backends are
// "memory" and "sqlite".
func New(cfg types.StoreConfig) (Repository, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(cfg.Seed), nil
	case "sqlite":
		return NewSQLiteStore(cfg.Path, cfg.Seed)
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}

func validStatus(status types.ArticleStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid article status %q", status)
	}
	return nil
}
