package server

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lifeguardcard/triagecore/internal/model"
	"github.com/lifeguardcard/triagecore/internal/pipeline"
	"github.com/lifeguardcard/triagecore/internal/quicktriage"
	"github.com/lifeguardcard/triagecore/internal/worker"
)

// Server exposes the triage pipeline and the quick-triage
// questionnaire over HTTP.
type Server struct {
	pipeline *pipeline.Pipeline
	store    *quicktriage.Store
	engine   *quicktriage.Engine
	limiter  *worker.Limiter
}

// New creates a server.
func New(p *pipeline.Pipeline, engine *quicktriage.Engine, store *quicktriage.Store, cfg model.ServerConfig) *Server {
	return &Server{
		pipeline: p,
		store:    store,
		engine:   engine,
		limiter:  worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.rateLimit)

	r.Get("/health", s.handleHealth)

	r.Route("/api/multimodal", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/capabilities", s.handleCapabilities)
	})

	r.Route("/api/quick-triage", func(r chi.Router) {
		r.Post("/start", s.handleQuickStart)
		r.Post("/{sessionID}/answer", s.handleQuickAnswer)
		r.Post("/{sessionID}/reset", s.handleQuickReset)
	})

	return r
}

// rateLimit rejects clients that exceed their per-address rate.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !s.limiter.Allow(host) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := s.pipeline.Assess(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Internal analyzer failures stay generic toward the caller.
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

func (s *Server) handleCapabilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.pipeline.Capabilities())
}

// quickStateResponse is the non-terminal questionnaire state returned
// to the caller: which session, which question, how far along.
type quickStateResponse struct {
	SessionID string          `json:"session_id"`
	Question  *model.Question `json:"question,omitempty"`
	Index     int             `json:"index"`
	Total     int             `json:"total"`

	Result *model.QuickAssessmentResult `json:"result,omitempty"`
}

func (s *Server) quickState(sess *model.QuickTriageSession) quickStateResponse {
	resp := quickStateResponse{
		SessionID: sess.ID,
		Index:     sess.CurrentIndex,
		Total:     len(s.engine.Questions()),
		Result:    sess.Result,
	}
	if q, ok := s.engine.CurrentQuestion(sess); ok {
		resp.Question = &q
	}
	return resp
}

func (s *Server) handleQuickStart(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()
	writeJSON(w, http.StatusCreated, s.quickState(sess))
}

type quickAnswerRequest struct {
	Answer bool `json:"answer"`
}

func (s *Server) handleQuickAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req quickAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := s.store.Answer(sessionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, model.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "quick triage failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, s.quickState(sess))
}

func (s *Server) handleQuickReset(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := s.store.Reset(sessionID)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "quick triage failed")
		return
	}

	writeJSON(w, http.StatusOK, s.quickState(sess))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
