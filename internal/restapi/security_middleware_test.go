package restapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("test response"))
	})
}

func TestSecurityHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	securityHeaders(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test response", rec.Body.String())

	headers := rec.Header()
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none';", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
	assert.Empty(t, headers.Get("Access-Control-Allow-Origin"), "no CORS headers without an Origin")
}

func TestSecurityHeadersWithCORS(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()

	securityHeaders(okHandler()).ServeHTTP(rec, req)

	headers := rec.Header()
	assert.Equal(t, "*", headers.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", headers.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-Request-ID", headers.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", headers.Get("Access-Control-Max-Age"))
}

func TestSecurityHeadersOPTIONSRequest(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Handler should not be called for OPTIONS request")
	})

	req := httptest.NewRequest("OPTIONS", "/api/trips.json", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()

	securityHeaders(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFullChainSetsSecurityHeaders(t *testing.T) {
	resp := serveApiAndRequest(t, createTestApi(t), http.MethodGet, "/api/fares.json?key=TEST", "")
	defer resp.Body.Close() // nolint:errcheck

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
