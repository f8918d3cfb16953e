package playground

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(Config{Port: 0}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleIndex(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "playground")
}

func TestHandleCompile(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/compile", "text/plain", strings.NewReader("(body color red)"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "body {\n  color: red;\n}\n", string(body))
}

func TestHandleCompile_Error(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/compile", "text/plain", strings.NewReader("(body color)"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var diag compileError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&diag))
	assert.Contains(t, diag.Error, `property "color" has no value`)
}

func TestHandleCompile_EmptyBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/compile", "text/plain", strings.NewReader(""))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	// An empty document compiles to empty CSS.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "", string(body))
}
