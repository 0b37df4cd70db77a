// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mdmze/advice-engine/internal/httputil"
	"github.com/mdmze/advice-engine/pkg/types"
)

// doajAPIBase is the DOAJ article search endpoint. Declared as a var so
// tests can substitute an httptest server.
var doajAPIBase = "https://doaj.org/api/v2/search/articles"

// DOAJAdapter queries the Directory of Open Access Journals.
type DOAJAdapter struct {
	Client    *http.Client
	UserAgent string
}

// Name returns the adapter identifier.
func (a *DOAJAdapter) Name() string { return "doaj" }

// Search returns up to max records for the query.
func (a *DOAJAdapter) Search(ctx context.Context, query string, max int) ([]types.Record, error) {
	reqURL := fmt.Sprintf("%s?q=%s&pageSize=%d", doajAPIBase, url.QueryEscape(query), max)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", a.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, a.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("DOAJ API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DOAJ API returned HTTP %d", resp.StatusCode)
	}

	var dr doajResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("parsing DOAJ response: %w", err)
	}

	var records []types.Record
	for _, res := range dr.Results {
		if res.ID == "" {
			continue
		}
		bib := res.Bibjson
		r := types.Record{
			Identifier: "doaj-" + res.ID,
			Title:      strings.TrimSpace(bib.Title),
			Abstract:   strings.TrimSpace(bib.Abstract),
			Journal:    strings.TrimSpace(bib.Journal.Title),
			Year:       strings.TrimSpace(bib.Year),
		}
		if r.Abstract == "" {
			r.Abstract = "No abstract available."
		}

		var authors []string
		for _, au := range bib.Authors {
			name := au.Name
			if name == "" {
				name = strings.TrimSpace(au.Given + " " + au.Family)
			}
			if name != "" {
				authors = append(authors, name)
			}
		}
		r.Authors = strings.Join(authors, ", ")

		var homepage string
		for _, link := range bib.Links {
			switch link.Type {
			case "doi":
				if r.DOI == "" {
					r.DOI = link.Content
				}
			case "fulltext":
				if r.URL == "" {
					r.URL = link.Content
				}
			case "homepage":
				if homepage == "" {
					homepage = link.Content
				}
			}
		}
		// Full text beats the journal homepage when both are present.
		if r.URL == "" {
			r.URL = homepage
		}

		records = append(records, r)
	}
	return records, nil
}

// DOAJ API JSON structures.
type doajResponse struct {
	Results []doajResult `json:"results"`
}

type doajResult struct {
	ID      string      `json:"id"`
	Bibjson doajBibjson `json:"bibjson"`
}

type doajBibjson struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Year     string `json:"year"`
	Journal  struct {
		Title string `json:"title"`
	} `json:"journal"`
	Authors []doajAuthor `json:"author"`
	Links   []doajLink   `json:"link"`
}

type doajAuthor struct {
	Name   string `json:"name"`
	Given  string `json:"given"`
	Family string `json:"family"`
}

type doajLink struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
