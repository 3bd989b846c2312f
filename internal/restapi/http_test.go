package restapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"tripgen.codingchallenge.net/internal/app"
	"tripgen.codingchallenge.net/internal/appconf"
	"tripgen.codingchallenge.net/internal/fares"
	"tripgen.codingchallenge.net/internal/logging"
	"tripgen.codingchallenge.net/internal/models"
)

// createTestApi creates a RestAPI over the default fare table with the key TEST and no rate limit.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	return createTestApiWithLogger(t, slog.New(slog.DiscardHandler))
}

func createTestApiWithLogger(t *testing.T, logger *slog.Logger) *RestAPI {
	t.Helper()
	cfg := app.Config{
		Env:     appconf.Test,
		ApiKeys: []string{"TEST"},
	}
	api := NewRestAPI(app.NewWithTable(cfg, logger, fares.DefaultTable()))
	t.Cleanup(api.Close)
	return api
}

// serveApiAndRequest runs one request against the full handler chain.
func serveApiAndRequest(t *testing.T, api *RestAPI, method, endpoint, body string) *http.Response {
	t.Helper()
	server := httptest.NewServer(api.Handler())
	t.Cleanup(server.Close)

	req, err := http.NewRequest(method, server.URL+endpoint, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// serveAndRetrieveEndpoint GETs endpoint and decodes the response model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	return serveApiAndRetrieve(t, createTestApi(t), http.MethodGet, endpoint, "")
}

func serveApiAndRetrieve(t *testing.T, api *RestAPI, method, endpoint, body string) (*http.Response, models.ResponseModel) {
	t.Helper()
	resp := serveApiAndRequest(t, api, method, endpoint, body)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(buf.Bytes(), &response), buf.String())
	return resp, response
}

func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}

// syncBuffer lets a test read logs written by server goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
