package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServesIndex(t *testing.T) {
	handler := Handler()

	req := httptest.NewRequest(http.MethodGet, "/static/index.html", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/html"))
	require.Contains(t, rr.Body.String(), "Mergington High School")
}

func TestServesStylesAndScript(t *testing.T) {
	handler := Handler()

	for _, asset := range []string{"/static/styles.css", "/static/app.js"} {
		req := httptest.NewRequest(http.MethodGet, asset, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code, asset)
	}
}

func TestMissingAssetReturnsNotFound(t *testing.T) {
	handler := Handler()

	req := httptest.NewRequest(http.MethodGet, "/static/missing.png", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
