package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mdmze/advice-engine/internal/chat"
	"github.com/mdmze/advice-engine/internal/research"
	"github.com/mdmze/advice-engine/internal/store"
	"github.com/mdmze/advice-engine/pkg/types"
)

type fixedCompleter struct {
	answer string
}

func (c *fixedCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return c.answer, nil
}

func newTestServer(seed bool) *Server {
	agg := &research.Aggregator{Curated: &research.CuratedAdapter{}}
	return &Server{
		Aggregator: agg,
		Session:    &chat.Session{Aggregator: agg, Completer: &fixedCompleter{answer: "stay calm"}},
		Repo:       store.NewMemoryStore(seed),
	}
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response %q: %v", rr.Body.String(), err)
	}
	return v
}

func TestResearchEndpoint(t *testing.T) {
	router := newTestServer(false).Router()

	rr := doJSON(t, router, "POST", "/api/research", `{"message":"help with tantrums"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	resp := decode[map[string]json.RawMessage](t, rr)

	var sources []types.Record
	if err := json.Unmarshal(resp["sources"], &sources); err != nil {
		t.Fatalf("sources: %v", err)
	}
	if len(sources) == 0 {
		t.Error("expected curated sources for a tantrum query")
	}
}

func TestResearchEndpointValidation(t *testing.T) {
	router := newTestServer(false).Router()

	rr := doJSON(t, router, "POST", "/api/research", `{"message":""}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
	rr = doJSON(t, router, "POST", "/api/research", `not json`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	router := newTestServer(false).Router()

	rr := doJSON(t, router, "POST", "/api/chat", `{"message":"help with tantrums"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	turn := decode[chat.Turn](t, rr)
	if turn.Answer != "stay calm" {
		t.Errorf("Answer = %q", turn.Answer)
	}
	if len(turn.Sources) == 0 {
		t.Error("expected sources")
	}
	if len(turn.FollowUps) == 0 {
		t.Error("expected follow-up questions")
	}
}

func TestChatEndpointFallback(t *testing.T) {
	router := newTestServer(false).Router()

	rr := doJSON(t, router, "POST", "/api/chat", `{"message":"cancer treatment options"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	turn := decode[chat.Turn](t, rr)
	if !turn.Fallback {
		t.Error("expected fallback turn")
	}
	if turn.Answer == "stay calm" {
		t.Error("fallback must not consult the model")
	}
}

func TestArticleLifecycle(t *testing.T) {
	router := newTestServer(false).Router()

	rr := doJSON(t, router, "POST", "/api/articles",
		`{"title":"Morning routines","content":"...","status":"draft"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	created := decode[types.Article](t, rr)
	if created.ID == "" {
		t.Fatal("created article has no id")
	}

	rr = doJSON(t, router, "GET", "/api/articles/"+created.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get status = %d", rr.Code)
	}

	rr = doJSON(t, router, "PATCH", "/api/articles/"+created.ID+"/status", `{"status":"featured"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("patch status = %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, router, "GET", "/api/articles?status=featured", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status = %d", rr.Code)
	}
	list := decode[map[string][]types.Article](t, rr)
	if len(list["articles"]) != 1 || list["articles"][0].ID != created.ID {
		t.Errorf("articles = %+v", list["articles"])
	}
}

func TestArticleErrors(t *testing.T) {
	router := newTestServer(false).Router()

	rr := doJSON(t, router, "GET", "/api/articles/nope", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("get missing: status = %d, want 404", rr.Code)
	}

	rr = doJSON(t, router, "PATCH", "/api/articles/nope/status", `{"status":"featured"}`)
	if rr.Code != http.StatusNotFound {
		t.Errorf("patch missing: status = %d, want 404", rr.Code)
	}

	rr = doJSON(t, router, "PATCH", "/api/articles/nope/status", `{"status":"published"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad status: status = %d, want 400", rr.Code)
	}

	rr = doJSON(t, router, "POST", "/api/articles", `{"content":"no title"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing title: status = %d, want 400", rr.Code)
	}

	rr = doJSON(t, router, "GET", "/api/articles?status=bogus", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bogus list status: status = %d, want 400", rr.Code)
	}
}

func TestListArticlesDefaultsToFeatured(t *testing.T) {
	router := newTestServer(true).Router()

	rr := doJSON(t, router, "GET", "/api/articles", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	list := decode[map[string][]types.Article](t, rr)
	if len(list["articles"]) != 2 {
		t.Errorf("got %d seeded featured articles, want 2", len(list["articles"]))
	}
}

func TestListAssessments(t *testing.T) {
	router := newTestServer(false).Router()

	rr := doJSON(t, router, "GET", "/api/assessments", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	list := decode[map[string][]types.Assessment](t, rr)
	if len(list["assessments"]) != 3 {
		t.Errorf("got %d assessments, want 3", len(list["assessments"]))
	}
}

func TestScoreAssessmentEndpoint(t *testing.T) {
	router := newTestServer(false).Router()

	answers := `{"answers":{"q1":3,"q2":3,"q3":3,"q4":3,"q5":3}}`
	rr := doJSON(t, router, "POST", "/api/assessments/parenting-stress/score", answers)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	result := decode[types.AssessmentResult](t, rr)
	if result.TotalScore != 15 {
		t.Errorf("TotalScore = %d, want 15", result.TotalScore)
	}
	if result.Band.Label != "Moderate Stress" {
		t.Errorf("Band = %q", result.Band.Label)
	}
}

func TestScoreAssessmentErrors(t *testing.T) {
	router := newTestServer(false).Router()

	rr := doJSON(t, router, "POST", "/api/assessments/unknown/score", `{"answers":{}}`)
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", rr.Code)
	}

	rr = doJSON(t, router, "POST", "/api/assessments/parenting-stress/score", `{"answers":{"q1":3}}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("incomplete answers: status = %d, want 400", rr.Code)
	}

	rr = doJSON(t, router, "POST", "/api/assessments/parenting-stress/score",
		`{"answers":{"q1":9,"q2":3,"q3":3,"q4":3,"q5":3}}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid value: status = %d, want 400", rr.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newTestServer(false).Router()
	rr := doJSON(t, router, "GET", "/health", "")
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}
