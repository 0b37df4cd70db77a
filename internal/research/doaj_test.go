package research

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleDOAJResponse = `{
  "results": [
    {
      "id": "abc123",
      "bibjson": {
        "title": "Open access study of parenting stress",
        "abstract": "Cross-sectional survey of parenting stress.",
        "year": "2021",
        "journal": {"title": "Open Family Research"},
        "author": [
          {"name": "A. Researcher"},
          {"given": "B.", "family": "Scholar"}
        ],
        "link": [
          {"type": "homepage", "content": "https://journal.example/home"},
          {"type": "fulltext", "content": "https://journal.example/articles/abc123.pdf"},
          {"type": "doi", "content": "10.2000/ofr.2021.9"}
        ]
      }
    },
    {
      "id": "",
      "bibjson": {"title": "Record without an id is skipped"}
    },
    {
      "id": "def456",
      "bibjson": {
        "title": "Minimal metadata record",
        "link": [{"type": "homepage", "content": "https://journal.example/def"}]
      }
    }
  ]
}`

func newDOAJServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			t.Error("missing q parameter")
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	orig := doajAPIBase
	doajAPIBase = srv.URL
	t.Cleanup(func() { doajAPIBase = orig })
	return srv
}

func TestDOAJSearch(t *testing.T) {
	newDOAJServer(t, sampleDOAJResponse)

	a := &DOAJAdapter{Client: &http.Client{}, UserAgent: "advice-engine-test"}
	records, err := a.Search(context.Background(), "parenting stress", 3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (blank id skipped)", len(records))
	}

	first := records[0]
	if first.Identifier != "doaj-abc123" {
		t.Errorf("Identifier = %q", first.Identifier)
	}
	if first.Title != "Open access study of parenting stress" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Journal != "Open Family Research" {
		t.Errorf("Journal = %q", first.Journal)
	}
	if first.Authors != "A. Researcher, B. Scholar" {
		t.Errorf("Authors = %q", first.Authors)
	}
	if first.DOI != "10.2000/ofr.2021.9" {
		t.Errorf("DOI = %q", first.DOI)
	}
	// Full text wins over the homepage link.
	if first.URL != "https://journal.example/articles/abc123.pdf" {
		t.Errorf("URL = %q", first.URL)
	}

	second := records[1]
	if second.Abstract != "No abstract available." {
		t.Errorf("Abstract = %q", second.Abstract)
	}
	// Only a homepage link present, so it is used.
	if second.URL != "https://journal.example/def" {
		t.Errorf("URL = %q", second.URL)
	}
}

func TestDOAJSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	orig := doajAPIBase
	doajAPIBase = srv.URL
	defer func() { doajAPIBase = orig }()

	a := &DOAJAdapter{Client: &http.Client{}}
	if _, err := a.Search(context.Background(), "q", 1); err == nil {
		t.Error("expected error on HTTP 503")
	}
}

func TestDOAJSearchBadJSON(t *testing.T) {
	newDOAJServer(t, `{"results": [`)

	a := &DOAJAdapter{Client: &http.Client{}}
	if _, err := a.Search(context.Background(), "q", 1); err == nil {
		t.Error("expected parse error")
	}
}
