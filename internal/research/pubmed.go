// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mdmze/advice-engine/internal/httputil"
	"github.com/mdmze/advice-engine/pkg/types"
)

// pubmedAPIBase is the NCBI E-utilities endpoint root. Declared as a var
// so tests can substitute an httptest server.
var pubmedAPIBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// PubMedAdapter queries PubMed through the two-step E-utilities flow:
// esearch for PMIDs, then efetch for article metadata.
type PubMedAdapter struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
}

// Name returns the adapter identifier.
func (a *PubMedAdapter) Name() string { return "pubmed" }

// Search returns up to max records for the query, sorted by PubMed's own
// relevance ranking.
func (a *PubMedAdapter) Search(ctx context.Context, query string, max int) ([]types.Record, error) {
	ids, err := a.searchIDs(ctx, query, max)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return a.fetchRecords(ctx, ids)
}

func (a *PubMedAdapter) searchIDs(ctx context.Context, query string, max int) ([]string, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {fmt.Sprintf("%d", max)},
		"sort":    {"relevance"},
		"retmode": {"json"},
	}
	if a.APIKey != "" {
		params.Set("api_key", a.APIKey)
	}

	body, err := a.get(ctx, pubmedAPIBase+"/esearch.fcgi?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("esearch: %w", err)
	}
	defer body.Close()

	var sr esearchResponse
	if err := json.NewDecoder(body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	return sr.Result.IDList, nil
}

func (a *PubMedAdapter) fetchRecords(ctx context.Context, ids []string) ([]types.Record, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}
	if a.APIKey != "" {
		params.Set("api_key", a.APIKey)
	}

	body, err := a.get(ctx, pubmedAPIBase+"/efetch.fcgi?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("efetch: %w", err)
	}
	defer body.Close()

	var set pubmedArticleSet
	if err := xml.NewDecoder(body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parsing efetch response: %w", err)
	}

	var records []types.Record
	for _, art := range set.Articles {
		pmid := strings.TrimSpace(art.PMID)
		if pmid == "" {
			continue
		}
		r := types.Record{
			Identifier: pmid,
			Title:      strings.TrimSpace(art.Title),
			Abstract:   strings.TrimSpace(art.Abstract),
			Journal:    strings.TrimSpace(art.Journal),
			Year:       strings.TrimSpace(art.Year),
			URL:        fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s/", pmid),
		}
		if r.Abstract == "" {
			r.Abstract = "No abstract available."
		}

		var authors []string
		for _, au := range art.Authors {
			name := strings.TrimSpace(au.ForeName + " " + au.LastName)
			if name != "" {
				authors = append(authors, name)
			}
		}
		r.Authors = strings.Join(authors, ", ")

		for _, loc := range art.ELocationIDs {
			if loc.Type == "doi" {
				r.DOI = strings.TrimSpace(loc.Value)
				break
			}
		}

		records = append(records, r)
	}
	return records, nil
}

func (a *PubMedAdapter) get(ctx context.Context, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", a.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, a.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("PubMed API request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("PubMed API returned HTTP %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// E-utilities JSON and XML wire structures.

type esearchResponse struct {
	Result struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

type pubmedArticleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID         string           `xml:"MedlineCitation>PMID"`
	Title        string           `xml:"MedlineCitation>Article>ArticleTitle"`
	Abstract     string           `xml:"MedlineCitation>Article>Abstract>AbstractText"`
	Journal      string           `xml:"MedlineCitation>Article>Journal>Title"`
	Year         string           `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>Year"`
	Authors      []pubmedAuthor   `xml:"MedlineCitation>Article>AuthorList>Author"`
	ELocationIDs []pubmedLocation `xml:"MedlineCitation>Article>ELocationID"`
}

type pubmedAuthor struct {
	LastName string `xml:"LastName"`
	ForeName string `xml:"ForeName"`
}

type pubmedLocation struct {
	Type  string `xml:"EIdType,attr"`
	Value string `xml:",chardata"`
}
