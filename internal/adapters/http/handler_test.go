package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/adapters/http"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/adapters/llm"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/app/assistant"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/enrich"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/gate"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	g := gate.New(
		[]string{"juanmafdez.dev", "localhost"},
		[]string{"stackblitz"},
	)
	manager := assistant.NewManager(
		g,
		llm.NewMockClient(),
		enrich.NoopEnricher{},
		assistant.AlwaysOnline{},
		5*time.Second,
	)

	return httpadapter.NewServer(manager)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

type sessionPayload struct {
	ID            string `json:"id"`
	Lang          string `json:"lang"`
	GateStatus    string `json:"gate_status"`
	AwaitingReply bool   `json:"awaiting_reply"`
	Turns         []struct {
		Role string `json:"role"`
		Text string `json:"text"`
	} `json:"turns"`
}

func createSession(t *testing.T, srv http.Handler, lang, origin string) sessionPayload {
	t.Helper()

	body := fmt.Sprintf(`{"lang":%q,"origin":%q}`, lang, origin)
	req := httptest.NewRequest(http.MethodPost, "/assistant/sessions", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())

	var resp sessionPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateSessionSeedsGreeting(t *testing.T) {
	srv := newTestServer(t)

	resp := createSession(t, srv, "en", "https://juanmafdez.dev")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "allowed", resp.GateStatus)
	assert.False(t, resp.AwaitingReply)
	require.Len(t, resp.Turns, 1)
	assert.Equal(t, "assistant", resp.Turns[0].Role)
}

func TestCreateSessionRestrictedOrigin(t *testing.T) {
	srv := newTestServer(t)

	resp := createSession(t, srv, "es", "https://demo.stackblitz.io")
	assert.Equal(t, "restricted", resp.GateStatus)

	// Submits against a restricted session are refused.
	body := []byte(`{"text":"hola"}`)
	req := httptest.NewRequest(http.MethodPost, "/assistant/sessions/"+resp.ID+"/messages", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSendMessageRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	sess := createSession(t, srv, "en", "localhost")

	body := []byte(`{"text":"What does he study?"}`)
	req := httptest.NewRequest(http.MethodPost, "/assistant/sessions/"+sess.ID+"/messages", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "body=%s", w.Body.String())

	var resp struct {
		UserTurn struct {
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"user_turn"`
		Reply struct {
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "user", resp.UserTurn.Role)
	assert.Equal(t, "What does he study?", resp.UserTurn.Text)
	assert.Equal(t, "assistant", resp.Reply.Role)
	assert.NotEmpty(t, resp.Reply.Text)

	// Timeline now has greeting + user + assistant.
	req = httptest.NewRequest(http.MethodGet, "/assistant/sessions/"+sess.ID, nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var timeline sessionPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &timeline))
	assert.Len(t, timeline.Turns, 3)
}

func TestSendMessageEmptyText(t *testing.T) {
	srv := newTestServer(t)
	sess := createSession(t, srv, "en", "localhost")

	body := []byte(`{"text":"   "}`)
	req := httptest.NewRequest(http.MethodPost, "/assistant/sessions/"+sess.ID+"/messages", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetLanguageReseeds(t *testing.T) {
	srv := newTestServer(t)
	sess := createSession(t, srv, "es", "localhost")

	body := []byte(`{"lang":"en"}`)
	req := httptest.NewRequest(http.MethodPost, "/assistant/sessions/"+sess.ID+"/language", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp sessionPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp.Lang)
	require.Len(t, resp.Turns, 1, "language switch resets the log to one greeting")
}

func TestDisposeSession(t *testing.T) {
	srv := newTestServer(t)
	sess := createSession(t, srv, "en", "localhost")

	req := httptest.NewRequest(http.MethodDelete, "/assistant/sessions/"+sess.ID, nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/assistant/sessions/"+sess.ID, nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuickActions(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/assistant/quick-actions?lang=en", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Actions []struct {
			Label  string `json:"label"`
			Prompt string `json:"prompt"`
		} `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Actions)
	for _, a := range resp.Actions {
		assert.NotEmpty(t, a.Label)
		assert.NotEmpty(t, a.Prompt)
	}
}

func TestUnknownRoutesAndMethods(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/assistant/sessions/does-not-exist", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodPut, "/assistant/sessions", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/assistant/sessions", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
