// Package assistant owns the conversational state of the portfolio's
// assistant widget: an append-only turn log plus the request/response state
// machine that mediates between user input and the completion service.
package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/i18n"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/observability"
)

// Session is the state machine for one open widget instance. It cycles
// between Idle and AwaitingReply for its whole life; at most one completion
// request is ever in flight.
type Session struct {
	id domain.SessionID

	llm     domain.CompletionClient
	enrich  domain.Enricher
	probe   domain.ConnectivityProbe
	timeout time.Duration
	now     func() time.Time

	mu       sync.Mutex
	store    *Store
	lang     domain.Language
	gate     domain.GateStatus
	awaiting bool
	disposed bool
	// epoch changes on every reseed; an in-flight reply whose epoch no
	// longer matches is discarded instead of appended.
	epoch int
}

// NewSession creates a session with the greeting already seeded: the first
// turn is a greeting variant when the gate is open, the maintenance notice
// when it is not.
func NewSession(
	id domain.SessionID,
	lang domain.Language,
	gateStatus domain.GateStatus,
	llm domain.CompletionClient,
	enricher domain.Enricher,
	probe domain.ConnectivityProbe,
	completionTimeout time.Duration,
) *Session {
	s := &Session{
		id:      id,
		llm:     llm,
		enrich:  enricher,
		probe:   probe,
		timeout: completionTimeout,
		now:     time.Now,
		store:   NewStore(),
		lang:    lang,
		gate:    gateStatus,
	}
	s.seedLocked()
	return s
}

func (s *Session) ID() domain.SessionID { return s.id }

func (s *Session) GateStatus() domain.GateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate
}

func (s *Session) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// AwaitingReply reports whether a completion request is in flight.
func (s *Session) AwaitingReply() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting
}

// Turns returns the conversation log in display order.
func (s *Session) Turns() []domain.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Turns()
}

// SubmitResult carries the two turns a successful submission appends.
type SubmitResult struct {
	UserTurn domain.Turn
	Reply    domain.Turn
}

// Submit runs one full submit transition. Exactly one of these happens:
//
//   - blank text, closed gate or an in-flight reply: rejected, log untouched;
//   - connectivity absent: user turn + offline error turn appended
//     immediately, no network call;
//   - otherwise: user turn appended, one completion call made, then the
//     assistant turn (success) or the generic service-error turn (any
//     failure) appended.
//
// Submit blocks while the completion call is in flight; concurrent calls on
// the same session get ErrBusy.
func (s *Session) Submit(ctx context.Context, text string) (*SubmitResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	log := observability.LoggerFromContext(ctx).With("session_id", s.id)

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if s.gate != domain.GateAllowed {
		// Input is disabled at the boundary; ignore defensively here too.
		s.mu.Unlock()
		observability.SubmissionsTotal.WithLabelValues(observability.OutcomeRestricted).Inc()
		return nil, ErrRestricted
	}
	if s.awaiting {
		s.mu.Unlock()
		observability.SubmissionsTotal.WithLabelValues(observability.OutcomeRejected).Inc()
		return nil, ErrBusy
	}

	userTurn := s.newTurnLocked(domain.RoleUser, text, nil)
	s.store.Append(userTurn)

	if !s.probe.Online() {
		// Pre-flight short circuit: no network attempt, stay Idle.
		reply := s.newTurnLocked(domain.RoleError, i18n.For(s.lang).OfflineError, nil)
		s.store.Append(reply)
		s.mu.Unlock()
		observability.SubmissionsTotal.WithLabelValues(observability.OutcomeOffline).Inc()
		log.Info("submission short-circuited offline")
		return &SubmitResult{UserTurn: userTurn, Reply: reply}, nil
	}

	s.awaiting = true
	lang := s.lang
	epoch := s.epoch
	s.mu.Unlock()

	snapshot := s.enrich.Snapshot()

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	answer, err := s.llm.Complete(cctx, text, lang, snapshot)
	observability.CompletionDuration.Observe(time.Since(start).Seconds())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed || s.epoch != epoch {
		// The widget went away (or the log was reseeded) while we were
		// waiting. Drop the result instead of mutating dead state.
		log.Info("discarding completion result for stale session")
		return nil, ErrReplyDiscarded
	}
	s.awaiting = false

	var reply domain.Turn
	if err != nil {
		// Every failure kind collapses to one generic message; the cause
		// stays in the operator log.
		log.Error("completion failed", "error", err)
		observability.SubmissionsTotal.WithLabelValues(observability.OutcomeService).Inc()
		reply = s.newTurnLocked(domain.RoleError, i18n.For(s.lang).ServiceError, nil)
	} else {
		observability.SubmissionsTotal.WithLabelValues(observability.OutcomeAnswered).Inc()
		reply = s.newTurnLocked(domain.RoleAssistant, answer.Text, answer.Citations)
	}
	s.store.Append(reply)

	return &SubmitResult{UserTurn: userTurn, Reply: reply}, nil
}

// SetLanguage switches the display language. A real change replaces the log
// with a fresh greeting in the new language (greeting and system prompt are
// language-bound); any in-flight reply is discarded when it lands.
func (s *Session) SetLanguage(lang domain.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed || lang == s.lang {
		return
	}
	s.lang = lang
	s.seedLocked()
}

// Dispose marks the session unmounted. Idempotent. An in-flight completion
// resolving afterwards is dropped without touching the log.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
}

func (s *Session) seedLocked() {
	s.epoch++
	s.awaiting = false

	text := i18n.Greeting(s.lang)
	if s.gate != domain.GateAllowed {
		text = i18n.For(s.lang).Maintenance
	}
	s.store.Seed(s.newTurnLocked(domain.RoleAssistant, text, nil))
}

func (s *Session) newTurnLocked(role domain.Role, text string, citations []domain.Citation) domain.Turn {
	return domain.Turn{
		ID:        domain.TurnID(uuid.NewString()),
		Role:      role,
		Text:      text,
		CreatedAt: s.now(),
		Citations: citations,
	}
}
