// Package server exposes the analysis pipeline over HTTP.
//
// The API is deliberately small:
//
//	POST /api/analyses      run an analysis and archive the result
//	GET  /api/analyses      list archived analyses, newest first
//	GET  /api/analyses/{id} fetch one archived analysis
//	GET  /healthz           liveness probe
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/stableset/pkg/archive"
	"github.com/matzehuels/stableset/pkg/errors"
	"github.com/matzehuels/stableset/pkg/pipeline"
	"github.com/matzehuels/stableset/pkg/profile"
)

// maxBodyBytes caps request bodies. Profiles are small; anything beyond
// this is either abuse or a mistake.
const maxBodyBytes = 1 << 20

// defaultListLimit bounds the list endpoint when no limit is given.
const defaultListLimit = 20

// Server routes HTTP requests to the analysis pipeline and archive.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	store  archive.Store
	logger *log.Logger
}

// New creates a server around the given runner and archive store.
func New(runner *pipeline.Runner, store archive.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		runner: runner,
		store:  store,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/analyses", func(r chi.Router) {
		r.Post("/", s.handleCreateAnalysis)
		r.Get("/", s.handleListAnalyses)
		r.Get("/{id}", s.handleGetAnalysis)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// analysisRequest is the POST /api/analyses request body.
type analysisRequest struct {
	Ballots [][]string       `json:"ballots"`
	Options pipeline.Options `json:"options"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	for _, ballot := range req.Ballots {
		for _, id := range ballot {
			if err := errors.ValidateCandidateID(id); err != nil {
				s.writeError(w, err)
				return
			}
		}
	}

	doc := profile.Document{Ballots: req.Ballots}
	p, err := profile.ToProfile(doc)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidProfile, err, "invalid profile"))
		return
	}

	result, err := s.runner.Execute(r.Context(), p, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := archive.Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Analysis:  *result.Analysis,
	}
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("archived analysis",
		"id", rec.ID,
		"candidates", len(rec.Analysis.Candidates),
		"winner", rec.Analysis.Winner)

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateAnalysisID(id); err != nil {
		s.writeError(w, err)
		return
	}

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "invalid limit: %q", raw))
			return
		}
		limit = n
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if recs == nil {
		recs = []archive.Record{}
	}

	writeJSON(w, http.StatusOK, recs)
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps structured error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError

	switch code {
	case errors.ErrCodeInvalidProfile, errors.ErrCodeInvalidBallot, errors.ErrCodeInvalidRule,
		errors.ErrCodeInvalidFormat, errors.ErrCodeTooManyCandidates:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeAnalysisNotFound:
		status = http.StatusNotFound
	case "":
		code = errors.ErrCodeInternal
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: errors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
