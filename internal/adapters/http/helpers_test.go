package httpadapter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalErrorHidesCauseFromClient(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/assistant/sessions/abc/messages", nil)
	w := httptest.NewRecorder()

	internalError(w, req, errors.New("credential rejected by upstream"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "credential", "causes must stay operator-only")
}

func TestParseLanguageDefaultsToSpanish(t *testing.T) {
	assert.Equal(t, "es", string(parseLanguage("")))
	assert.Equal(t, "es", string(parseLanguage("de")))
	assert.Equal(t, "en", string(parseLanguage(" EN ")))
	assert.Equal(t, "es", string(parseLanguage("Es")))
}

func TestWriteJSONSetsContentType(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSON(w, http.StatusTeapot, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
}
