// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ArticleStatus is the publication state of a stored article.
type ArticleStatus string

const (
	StatusDraft    ArticleStatus = "draft"
	StatusFeatured ArticleStatus = "featured"
	StatusArchived ArticleStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusFeatured, StatusArchived:
		return true
	}
	return false
}

// Reference is a cited source attached to an article.
type Reference struct {
	ID            string    `json:"id" yaml:"id"`
	ArticleID     string    `json:"article_id,omitempty" yaml:"article_id,omitempty"`
	Title         string    `json:"title" yaml:"title"`
	URL           string    `json:"url" yaml:"url"`
	Quote         string    `json:"quote" yaml:"quote"`
	Domain        string    `json:"domain" yaml:"domain"`
	PublishedDate time.Time `json:"published_date,omitzero" yaml:"published_date,omitempty"`
}

// Article is a content item managed through the draft/featured/archived
// workflow.
type Article struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Content     string        `json:"content" yaml:"content"`
	Summary     string        `json:"summary" yaml:"summary"`
	References  []Reference   `json:"references" yaml:"references"`
	PublishDate time.Time     `json:"publish_date" yaml:"publish_date"`
	Status      ArticleStatus `json:"status" yaml:"status"`
	Tags        []string      `json:"tags" yaml:"tags"`
	Category    string        `json:"category" yaml:"category"`
	CreatedAt   time.Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" yaml:"updated_at"`
}
