package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mountkit/mountkit/internal/config"
	"github.com/mountkit/mountkit/internal/storage/memory"
)

func newTestConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{Port: 8080, ShutdownTimeoutSeconds: 10},
		DB:     config.DBConfig{Driver: config.DriverMemory},
	}
}

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	server, err := NewServer(cfg, memory.NewNoteStore(), zap.NewNop())
	require.NoError(t, err)
	return server
}

func TestServerServesHealthProbes(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, newTestConfig())

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestServerSetsRequestID(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, newTestConfig())

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServerMountsNotesUnderV1(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, newTestConfig())

	body := bytes.NewBufferString(`{"title":"hello","body":"world"}`)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/notes", body))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/notes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "hello")

	// The unit is mounted exclusively under the group.
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerServesMetricsWhenEnabled(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.Metrics.Enabled = true
	server := newTestServer(t, cfg)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "# HELP")
}

func TestServerOmitsMetricsWhenDisabled(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, newTestConfig())

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerEnforcesAPIKey(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.Auth = config.AuthConfig{Enabled: true, APIKey: "sesame"}
	server := newTestServer(t, cfg)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/notes", nil))
	require.Equal(t, http.StatusForbidden, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
	req.Header.Set("X-API-Key", "sesame")
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewServerRequiresResolvableEndpoints(t *testing.T) {
	t.Parallel()

	// A nil store makes the notes endpoint unresolvable; server assembly
	// must fail instead of mounting a partial route table.
	_, err := NewServer(newTestConfig(), nil, zap.NewNop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "mount v1 endpoints")
}
