package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQueryReturnsEmptyResults(t *testing.T) {
	router := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected remote call: %s", r.URL.Path)
		http.Error(w, `{"error": "unexpected"}`, http.StatusBadRequest)
	})

	req, _ := http.NewRequest("GET", "/api/search?q=++", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var results map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	assert.JSONEq(t, "[]", string(results["artworks"]))
	assert.JSONEq(t, "[]", string(results["artists"]))
}

func TestSearchUpstreamFailure(t *testing.T) {
	router := setupRouter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "unavailable"}`, http.StatusBadGateway)
	})

	req, _ := http.NewRequest("GET", "/api/search?q=mosaic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "поиска")
}
