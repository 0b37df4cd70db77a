// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mdmze/advice-engine/pkg/types"
)

// SQLiteStore persists articles in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path, creating the
// schema if needed. When seed is true and the articles table is empty the
// development sample articles are inserted.
func NewSQLiteStore(path string, seed bool) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	if seed {
		if err := s.seedIfEmpty(); err != nil {
			db.Close()
			return nil, fmt.Errorf("seeding database: %w", err)
		}
	}
	return s, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT,
			summary TEXT,
			publish_date TEXT,
			status TEXT NOT NULL,
			tags TEXT,
			category TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_status ON articles(status)`,
		`CREATE TABLE IF NOT EXISTS article_refs (
			id TEXT PRIMARY KEY,
			article_id TEXT NOT NULL REFERENCES articles(id),
			title TEXT,
			url TEXT,
			quote TEXT,
			domain TEXT,
			published_date TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_article_refs_article_id ON article_refs(article_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM articles`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, a := range SeedArticles() {
		if err := s.insert(context.Background(), a); err != nil {
			return err
		}
	}
	return nil
}

// Create stores a new article and its references in one transaction.
func (s *SQLiteStore) Create(ctx context.Context, a types.Article) (types.Article, error) {
	prepareArticle(&a)
	if err := validStatus(a.Status); err != nil {
		return types.Article{}, err
	}
	if err := s.insert(ctx, a); err != nil {
		return types.Article{}, err
	}
	return a, nil
}

func (s *SQLiteStore) insert(ctx context.Context, a types.Article) error {
	tags, err := json.Marshal(a.Tags)
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO articles (id, title, content, summary, publish_date, status, tags, category, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Content, a.Summary, fmtTime(a.PublishDate), string(a.Status),
		string(tags), a.Category, fmtTime(a.CreatedAt), fmtTime(a.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting article: %w", err)
	}

	for _, r := range a.References {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO article_refs (id, article_id, title, url, quote, domain, published_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, a.ID, r.Title, r.URL, r.Quote, r.Domain, fmtTime(r.PublishedDate))
		if err != nil {
			return fmt.Errorf("inserting reference: %w", err)
		}
	}
	return tx.Commit()
}

// ByStatus returns up to limit articles with the given status, newest
// first.
func (s *SQLiteStore) ByStatus(ctx context.Context, status types.ArticleStatus, limit int) ([]types.Article, error) {
	if err := validStatus(status); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, summary, publish_date, status, tags, category, created_at, updated_at
		 FROM articles WHERE status = ? ORDER BY created_at DESC LIMIT ?`,
		string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []types.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}

	for i := range articles {
		refs, err := s.referencesFor(ctx, articles[i].ID)
		if err != nil {
			return nil, err
		}
		articles[i].References = refs
	}
	return articles, nil
}

// ByID returns the article with the given id.
func (s *SQLiteStore) ByID(ctx context.Context, id string) (types.Article, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, summary, publish_date, status, tags, category, created_at, updated_at
		 FROM articles WHERE id = ?`, id)

	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return types.Article{}, ErrNotFound
	}
	if err != nil {
		return types.Article{}, err
	}

	refs, err := s.referencesFor(ctx, id)
	if err != nil {
		return types.Article{}, err
	}
	a.References = refs
	return a, nil
}

// UpdateStatus moves an article to a new status.
func (s *SQLiteStore) UpdateStatus(ctx context.Context, id string, status types.ArticleStatus) error {
	if err := validStatus(status); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE articles SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), fmtTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ArchiveOldestFeatured archives up to n featured articles, oldest first.
func (s *SQLiteStore) ArchiveOldestFeatured(ctx context.Context, n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM articles WHERE status = ? ORDER BY created_at ASC LIMIT ?`,
		string(types.StatusFeatured), n)
	if err != nil {
		return 0, fmt.Errorf("querying featured articles: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	now := fmtTime(time.Now())
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE articles SET status = ?, updated_at = ? WHERE id = ?`,
			string(types.StatusArchived), now, id); err != nil {
			return 0, fmt.Errorf("archiving article %s: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Stats returns the article count per status.
func (s *SQLiteStore) Stats(ctx context.Context) (map[types.ArticleStatus]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, count(*) FROM articles GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[types.ArticleStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[types.ArticleStatus(status)] = count
	}
	return stats, rows.Err()
}

func (s *SQLiteStore) referencesFor(ctx context.Context, articleID string) ([]types.Reference, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, article_id, title, url, quote, domain, published_date
		 FROM article_refs WHERE article_id = ?`, articleID)
	if err != nil {
		return nil, fmt.Errorf("querying references: %w", err)
	}
	defer rows.Close()

	var refs []types.Reference
	for rows.Next() {
		var r types.Reference
		var published string
		if err := rows.Scan(&r.ID, &r.ArticleID, &r.Title, &r.URL, &r.Quote, &r.Domain, &published); err != nil {
			return nil, err
		}
		r.PublishedDate = parseTime(published)
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(row scanner) (types.Article, error) {
	var a types.Article
	var publishDate, status, tags, createdAt, updatedAt string
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Summary, &publishDate,
		&status, &tags, &a.Category, &createdAt, &updatedAt)
	if err != nil {
		return types.Article{}, err
	}
	a.Status = types.ArticleStatus(status)
	a.PublishDate = parseTime(publishDate)
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
			return types.Article{}, fmt.Errorf("parsing tags: %w", err)
		}
	}
	return a, nil
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
