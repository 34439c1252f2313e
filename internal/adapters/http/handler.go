package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/app/assistant"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/i18n"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/observability"
)

type Server struct {
	manager *assistant.Manager
}

func NewServer(manager *assistant.Manager) http.Handler {
	s := &Server{manager: manager}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", promhttp.Handler())

	// /assistant/quick-actions → GET: canned prompts for a language
	mux.HandleFunc("/assistant/quick-actions", s.handleQuickActions)

	// /assistant/sessions → POST: open a widget session
	mux.HandleFunc("/assistant/sessions", s.handleSessions)

	// /assistant/sessions/{id}          → GET: timeline, DELETE: dispose
	// /assistant/sessions/{id}/messages → POST: submit a message
	// /assistant/sessions/{id}/language → POST: switch display language
	mux.HandleFunc("/assistant/sessions/", s.handleSessionWithID)

	// Order matters: request ids are assigned outermost so the logging
	// middleware (and everything below) sees them in the context.
	return chainMiddlewares(mux, withCORS, withLogging, withRequestID)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type createSessionRequest struct {
	Lang   string `json:"lang"`
	Origin string `json:"origin"`
}

type turnResponse struct {
	ID        string             `json:"id"`
	Role      string             `json:"role"`
	Text      string             `json:"text"`
	CreatedAt time.Time          `json:"created_at"`
	Citations []citationResponse `json:"citations,omitempty"`
}

type citationResponse struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type sessionResponse struct {
	ID            string         `json:"id"`
	Lang          string         `json:"lang"`
	GateStatus    string         `json:"gate_status"`
	AwaitingReply bool           `json:"awaiting_reply"`
	Turns         []turnResponse `json:"turns"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type sendMessageResponse struct {
	UserTurn turnResponse `json:"user_turn"`
	Reply    turnResponse `json:"reply"`
}

type setLanguageRequest struct {
	Lang string `json:"lang"`
}

type quickActionsResponse struct {
	Actions []i18n.QuickAction `json:"actions"`
}

// ─────────────────────────────────────────────
// Basic routing
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateSession(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleSessionWithID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/assistant/sessions/")
	if path == "" {
		http.NotFound(w, r)
		return
	}

	parts := strings.Split(path, "/")
	id := domain.SessionID(parts[0])
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			s.handleGetSession(w, r, id)
		case http.MethodDelete:
			s.handleDisposeSession(w, r, id)
		default:
			methodNotAllowed(w)
		}
		return
	}

	if len(parts) == 2 {
		switch parts[1] {
		case "messages":
			if r.Method != http.MethodPost {
				methodNotAllowed(w)
				return
			}
			s.handleSendMessage(w, r, id)
			return
		case "language":
			if r.Method != http.MethodPost {
				methodNotAllowed(w)
				return
			}
			s.handleSetLanguage(w, r, id)
			return
		}
	}

	http.NotFound(w, r)
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	origin := req.Origin
	if origin == "" {
		origin = r.Header.Get("Origin")
	}

	session := s.manager.Create(parseLanguage(req.Lang), origin)

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	session, err := s.manager.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (s *Server) handleDisposeSession(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	if err := s.manager.Dispose(id); err != nil {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	session, err := s.manager.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := session.Submit(r.Context(), req.Text)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, sendMessageResponse{
			UserTurn: toTurnResponse(out.UserTurn),
			Reply:    toTurnResponse(out.Reply),
		})
	case errors.Is(err, assistant.ErrEmptyInput):
		badRequest(w, "text is required")
	case errors.Is(err, assistant.ErrBusy):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": "a reply is already in flight",
		})
	case errors.Is(err, assistant.ErrRestricted):
		writeJSON(w, http.StatusForbidden, map[string]string{
			"error": "assistant is not available in this environment",
		})
	case errors.Is(err, assistant.ErrReplyDiscarded):
		writeJSON(w, http.StatusGone, map[string]string{
			"error": "session went away before the reply arrived",
		})
	case errors.Is(err, assistant.ErrSessionNotFound):
		http.NotFound(w, r)
	default:
		internalError(w, r, err)
	}
}

func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request, id domain.SessionID) {
	session, err := s.manager.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var req setLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	session.SetLanguage(parseLanguage(req.Lang))

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func (s *Server) handleQuickActions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	lang := parseLanguage(r.URL.Query().Get("lang"))
	writeJSON(w, http.StatusOK, quickActionsResponse{
		Actions: i18n.For(lang).QuickActions,
	})
}

// ─────────────────────────────────────────────
// Response helpers
// ─────────────────────────────────────────────

func toSessionResponse(session *assistant.Session) sessionResponse {
	turns := session.Turns()
	out := make([]turnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, toTurnResponse(t))
	}

	return sessionResponse{
		ID:            string(session.ID()),
		Lang:          string(session.Language()),
		GateStatus:    string(session.GateStatus()),
		AwaitingReply: session.AwaitingReply(),
		Turns:         out,
	}
}

func toTurnResponse(t domain.Turn) turnResponse {
	var citations []citationResponse
	for _, c := range t.Citations {
		citations = append(citations, citationResponse{Title: c.Title, URI: c.URI})
	}

	return turnResponse{
		ID:        string(t.ID),
		Role:      string(t.Role),
		Text:      t.Text,
		CreatedAt: t.CreatedAt,
		Citations: citations,
	}
}

func parseLanguage(s string) domain.Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return domain.LangEN
	case "es":
		return domain.LangES
	default:
		// Site default.
		return domain.LangES
	}
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

// internalError hides the cause from the client but keeps it for operators.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	observability.LoggerFromContext(r.Context()).Error("unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
