package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailers/inventory/internal/catalog"
	"trailers/inventory/internal/codec"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	exportFormat = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	assert.NoError(t, closeApplication())
	assert.Nil(t, application)
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExport(t *testing.T) {
	cfg := writeConfig(t, "log:\n  level: error\n")

	out, err := run(t, "export", "--config", cfg, "--format", "yaml")
	require.NoError(t, err)

	roots, err := codec.Unmarshal([]byte(out), codec.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, catalog.Roots(), roots)
}

func TestExport_ConfigFormat(t *testing.T) {
	cfg := writeConfig(t, "log:\n  level: error\nexport:\n  format: json\n")

	out, err := run(t, "export", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `"containerName": "Trailers"`)
}

func TestValidate(t *testing.T) {
	strict := writeConfig(t, "log:\n  level: panic\n")
	_, err := run(t, "validate", "--config", strict)
	assert.Error(t, err)

	lenient := writeConfig(t, "log:\n  level: panic\nvalidation:\n  strict: false\n")
	_, err = run(t, "validate", "--config", lenient)
	assert.NoError(t, err)
}

func TestAssets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/desk.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := writeConfig(t, "log:\n  level: panic\nassets:\n  base_url: "+srv.URL+"\n  max_retries: 0\n")

	out, err := run(t, "assets", "--config", cfg)
	require.Error(t, err)
	assert.Equal(t, "desk.png\n", out)
}

func TestBadConfig(t *testing.T) {
	_, err := run(t, "validate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
