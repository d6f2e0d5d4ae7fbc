package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rptlabs/counterpose/internal/catalog"
)

// SessionHandler handles session workflow endpoints.
type SessionHandler struct {
	*Handler
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(base *Handler) *SessionHandler {
	return &SessionHandler{Handler: base}
}

// RegisterRoutes registers workflow and catalog routes.
func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", h.SubmitReasoning)
		r.Get("/sessions/{sessionID}", h.GetSession)
		r.Post("/sessions/{sessionID}/personas", h.SelectPersonas)
		r.Post("/sessions/{sessionID}/critiques", h.SubmitCritique)
		r.Post("/sessions/{sessionID}/synthesis", h.SubmitSynthesis)

		r.Get("/domains", h.GetDomains)
		r.Get("/personas", h.GetPersonas)
		r.Get("/templates", h.GetTemplates)
	})
}

type submitReasoningRequest struct {
	SessionID string `json:"session_id"`
	Reasoning string `json:"reasoning"`
}

// SubmitReasoning starts (or restarts) a session from reasoning text. A
// missing session id is generated server-side.
func (h *SessionHandler) SubmitReasoning(w http.ResponseWriter, r *http.Request) {
	var req submitReasoningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Reasoning == "" {
		Error(w, http.StatusBadRequest, "reasoning is required")
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	result, err := h.svc.SubmitReasoning(r.Context(), req.SessionID, req.Reasoning)
	if err != nil {
		WorkflowError(w, err)
		return
	}
	JSON(w, http.StatusCreated, result)
}

type selectPersonasRequest struct {
	Personas []string `json:"personas"`
}

// SelectPersonas sets the session's persona pair.
func (h *SessionHandler) SelectPersonas(w http.ResponseWriter, r *http.Request) {
	var req selectPersonasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.svc.SelectPersonas(r.Context(), chi.URLParam(r, "sessionID"), req.Personas)
	if err != nil {
		WorkflowError(w, err)
		return
	}
	JSON(w, http.StatusOK, result)
}

type submitCritiqueRequest struct {
	Persona  string `json:"persona"`
	Critique string `json:"critique"`
}

// SubmitCritique records one persona's critique.
func (h *SessionHandler) SubmitCritique(w http.ResponseWriter, r *http.Request) {
	var req submitCritiqueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.svc.SubmitCritique(r.Context(), chi.URLParam(r, "sessionID"), req.Persona, req.Critique)
	if err != nil {
		WorkflowError(w, err)
		return
	}
	JSON(w, http.StatusOK, result)
}

type submitSynthesisRequest struct {
	Synthesis string `json:"synthesis"`
}

// SubmitSynthesis records the final synthesis and completes the session.
func (h *SessionHandler) SubmitSynthesis(w http.ResponseWriter, r *http.Request) {
	var req submitSynthesisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.svc.SubmitSynthesis(r.Context(), chi.URLParam(r, "sessionID"), req.Synthesis)
	if err != nil {
		WorkflowError(w, err)
		return
	}
	JSON(w, http.StatusOK, result)
}

// GetSession returns a read-only snapshot of the session.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		WorkflowError(w, err)
		return
	}
	JSON(w, http.StatusOK, session)
}

// GetDomains returns the domain keyword tables.
func (h *SessionHandler) GetDomains(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, catalog.DomainKeywords)
}

// GetPersonas returns the persona pair catalog per domain.
func (h *SessionHandler) GetPersonas(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string][][]string, len(catalog.PersonaPairs))
	for d, entries := range catalog.PersonaPairs {
		pairs := make([][]string, 0, len(entries))
		for _, entry := range entries {
			pairs = append(pairs, entry.Pair.Slice())
		}
		out[string(d)] = pairs
	}
	JSON(w, http.StatusOK, out)
}

// GetTemplates returns the example template catalog.
func (h *SessionHandler) GetTemplates(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, catalog.Templates)
}
