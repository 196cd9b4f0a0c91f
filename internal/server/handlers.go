package server

import (
	"encoding/json"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/manuscript-reviewer/internal/review"
	"github.com/jonathan/manuscript-reviewer/internal/scoring"
	"github.com/jonathan/manuscript-reviewer/internal/types"
)

// batchConcurrency bounds how many texts are scored at once per batch
// request. The heuristic engine is pure and safe to run concurrently.
const batchConcurrency = 4

// BatchAnalyzeResponse is the response body for POST /analyze/batch.
type BatchAnalyzeResponse struct {
	Results []types.AnalysisResult `json:"results"`
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex renders the landing page listing the five dimension labels.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.indexTmpl.Execute(w, struct{ Dimensions []string }{types.Dimensions}); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to render page: "+err.Error())
	}
}

// handleAnalyze scores a single text with the requested engine. The
// heuristic engine never fails; LLM reviewer errors surface as 500 with the
// typed error's message.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "engine", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	switch req.Engine {
	case types.EngineLLM:
		if s.reviewer == nil {
			err := &review.ErrMissingAPIKey{}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		rev, err := s.reviewer.Review(r.Context(), req.Text)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		s.jsonResponse(w, http.StatusOK, rev)

	default: // heuristic
		s.jsonResponse(w, http.StatusOK, scoring.Score(req.Text))
	}
}

// handleAnalyzeBatch scores each text with the heuristic engine, bounded
// concurrently. Results keep the order of the input texts.
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "texts", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	results := make([]types.AnalysisResult, len(req.Texts))

	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(batchConcurrency)
	for i, text := range req.Texts {
		g.Go(func() error {
			results[i] = scoring.Score(text)
			return nil
		})
	}
	// Scoring is total; Wait only propagates context errors.
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, BatchAnalyzeResponse{Results: results})
}
