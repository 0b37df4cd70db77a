// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mdmze/advice-engine/pkg/types"
)

// MemoryStore keeps articles in process memory behind a mutex. Contents
// live only as long as the process; it exists for development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	articles []types.Article
}

// NewMemoryStore builds an empty store, optionally seeded with the
// development sample articles.
func NewMemoryStore(seed bool) *MemoryStore {
	s := &MemoryStore{}
	if seed {
		s.articles = SeedArticles()
	}
	return s
}

// Create stores a new article.
func (s *MemoryStore) Create(_ context.Context, a types.Article) (types.Article, error) {
	prepareArticle(&a)
	if err := validStatus(a.Status); err != nil {
		return types.Article{}, err
	}

	s.mu.Lock()
	s.articles = append(s.articles, a)
	s.mu.Unlock()
	return a, nil
}

// ByStatus returns up to limit articles with the given status, newest
// first.
func (s *MemoryStore) ByStatus(_ context.Context, status types.ArticleStatus, limit int) ([]types.Article, error) {
	if err := validStatus(status); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	s.mu.RLock()
	var matched []types.Article
	for _, a := range s.articles {
		if a.Status == status {
			matched = append(matched, a)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// ByID returns the article with the given id.
func (s *MemoryStore) ByID(_ context.Context, id string) (types.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return types.Article{}, ErrNotFound
}

// UpdateStatus moves an article to a new status.
func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status types.ArticleStatus) error {
	if err := validStatus(status); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles[i].Status = status
			s.articles[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

// ArchiveOldestFeatured archives up to n featured articles, oldest first.
func (s *MemoryStore) ArchiveOldestFeatured(_ context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var featured []*types.Article
	for i := range s.articles {
		if s.articles[i].Status == types.StatusFeatured {
			featured = append(featured, &s.articles[i])
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].CreatedAt.Before(featured[j].CreatedAt)
	})
	if len(featured) > n {
		featured = featured[:n]
	}

	now := time.Now()
	for _, a := range featured {
		a.Status = types.StatusArchived
		a.UpdatedAt = now
	}
	return len(featured), nil
}

// Stats returns the article count per status.
func (s *MemoryStore) Stats(_ context.Context) (map[types.ArticleStatus]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[types.ArticleStatus]int)
	for _, a := range s.articles {
		stats[a.Status]++
	}
	return stats, nil
}

// Close is a no-op for the memory backend.
func (s *MemoryStore) Close() error { return nil }

// prepareArticle fills in generated fields before storage.
func prepareArticle(a *types.Article) {
	now := time.Now()
	if a.ID == "" {
		a.ID = "article_" + uuid.NewString()
	}
	if a.Status == "" {
		a.Status = types.StatusDraft
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	for i := range a.References {
		if a.References[i].ID == "" {
			a.References[i].ID = "ref_" + uuid.NewString()
		}
		a.References[i].ArticleID = a.ID
	}
}
