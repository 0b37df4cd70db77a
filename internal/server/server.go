// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the advice engine over HTTP: research
// aggregation, chat, the article store, and assessment scoring.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mdmze/advice-engine/internal/assessment"
	"github.com/mdmze/advice-engine/internal/chat"
	"github.com/mdmze/advice-engine/internal/research"
	"github.com/mdmze/advice-engine/internal/store"
	"github.com/mdmze/advice-engine/pkg/types"
)

// Server holds the HTTP surface's dependencies.
type Server struct {
	Aggregator *research.Aggregator
	Session    *chat.Session
	Repo       store.Repository
}

// Router builds the API router.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/research", s.handleResearch).Methods("POST")
	r.HandleFunc("/api/chat", s.handleChat).Methods("POST")

	r.HandleFunc("/api/articles", s.handleListArticles).Methods("GET")
	r.HandleFunc("/api/articles", s.handleCreateArticle).Methods("POST")
	r.HandleFunc("/api/articles/{id}", s.handleGetArticle).Methods("GET")
	r.HandleFunc("/api/articles/{id}/status", s.handleUpdateArticleStatus).Methods("PATCH")

	r.HandleFunc("/api/assessments", s.handleListAssessments).Methods("GET")
	r.HandleFunc("/api/assessments/{id}/score", s.handleScoreAssessment).Methods("POST")

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return r
}

type messageRequest struct {
	Message string `json:"message"`
}

// researchResponse mirrors the aggregation output for API consumers.
type researchResponse struct {
	Query             string         `json:"query"`
	Sources           []types.Record `json:"sources"`
	Fallback          string         `json:"fallback,omitempty"`
	DuplicatesRemoved int            `json:"duplicatesRemoved"`
	FilteredOut       int            `json:"filteredOut"`
	SourceErrors      []string       `json:"sourceErrors,omitempty"`
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	out, err := s.Aggregator.Search(r.Context(), req.Message, io.Discard)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sources := out.Records
	if sources == nil {
		sources = []types.Record{}
	}
	writeJSON(w, http.StatusOK, researchResponse{
		Query:             req.Message,
		Sources:           sources,
		Fallback:          out.Fallback,
		DuplicatesRemoved: out.DupsRemoved,
		FilteredOut:       out.FilteredOut,
		SourceErrors:      out.AdapterErrors,
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	turn, err := s.Session.Ask(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrTurnInFlight) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, turn)
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	status := types.ArticleStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = types.StatusFeatured
	}
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	articles, err := s.Repo.ByStatus(r.Context(), status, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if articles == nil {
		articles = []types.Article{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"articles": articles})
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var a types.Article
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if a.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := s.Repo.Create(r.Context(), a)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	a, err := s.Repo.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type statusRequest struct {
	Status types.ArticleStatus `json:"status"`
}

func (s *Server) handleUpdateArticleStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	if err := s.Repo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "status": req.Status})
}

func (s *Server) handleListAssessments(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"assessments": assessment.Builtins()})
}

type scoreRequest struct {
	Answers types.AnswerSet `json:"answers"`
}

func (s *Server) handleScoreAssessment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	def, err := assessment.ByID(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := assessment.Score(def, req.Answers)
	if err != nil {
		if errors.Is(err, assessment.ErrIncompleteAnswers) || errors.Is(err, assessment.ErrInvalidAnswer) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
