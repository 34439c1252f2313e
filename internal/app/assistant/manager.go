package assistant

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/gate"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/observability"
)

// Manager creates and tracks live sessions for the HTTP surface. Each widget
// instance maps to exactly one session; disposing removes it.
type Manager struct {
	gate    *gate.Gate
	llm     domain.CompletionClient
	enrich  domain.Enricher
	probe   domain.ConnectivityProbe
	timeout time.Duration

	mu       sync.RWMutex
	sessions map[domain.SessionID]*Session
}

func NewManager(
	g *gate.Gate,
	llm domain.CompletionClient,
	enricher domain.Enricher,
	probe domain.ConnectivityProbe,
	completionTimeout time.Duration,
) *Manager {
	return &Manager{
		gate:     g,
		llm:      llm,
		enrich:   enricher,
		probe:    probe,
		timeout:  completionTimeout,
		sessions: make(map[domain.SessionID]*Session),
	}
}

// Create opens a session for a widget loading at the given origin. The gate
// is evaluated here, once, and stays fixed for the session's lifetime.
func (m *Manager) Create(lang domain.Language, origin string) *Session {
	status := m.gate.Evaluate(origin)
	if status == domain.GateRestricted {
		observability.GateRestrictedTotal.Inc()
	}

	s := NewSession(
		domain.SessionID(uuid.NewString()),
		lang,
		status,
		m.llm,
		m.enrich,
		m.probe,
		m.timeout,
	)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id domain.SessionID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Dispose unmounts a session: it is removed from the manager and any reply
// still in flight will be discarded.
func (m *Manager) Dispose(id domain.SessionID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.Dispose()
	return nil
}
