package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/lumi/cmd/lumi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOllama answers chat requests with reply and lists gemma:2b as
// installed.
func fakeOllama(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/chat":
			_, _ = w.Write([]byte(`{"model":"gemma:2b","message":{"role":"assistant","content":"` + reply + `"},"done":true}`))
		case "/api/tags":
			_, _ = w.Write([]byte(`{"models":[{"name":"gemma:2b","model":"gemma:2b"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// run executes the CLI with the local index at db.
func run(t *testing.T, db string, args ...string) (string, string, error) {
	t.Helper()
	m := main.NewMain()
	m.DBPath = db

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

// indexTree writes a small tree, indexes it and returns the database path.
func indexTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "small.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.bin"), bytes.Repeat([]byte("x"), 4096), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "report.pdf"), []byte("%PDF"), 0o644))

	db := filepath.Join(t.TempDir(), "lumi.db")
	stdout, _, err := run(t, db, "index", root)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Indexed 5 entries (4.0 KB) from 1 roots")
	return db
}

func TestMain_Run_IndexAndSearch(t *testing.T) {
	t.Parallel()

	db := indexTree(t)

	t.Run("search by extension", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, db, "--backend", "sqlite", "search", "ext:pdf")

		require.NoError(t, err)
		assert.Contains(t, stdout, "report.pdf")
		assert.NotContains(t, stdout, "small.txt")
	})

	t.Run("search sorted by size", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, db, "--backend", "sqlite", "search", "--sort", "size", "file:")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "big.bin")
	})

	t.Run("agent finds empty folders without the model", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, db, "--backend", "sqlite", "--ollama-url", "http://127.0.0.1:1", "agent", "show empty folders")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Found 1 files matching 'folder:childcount:0'.")
		assert.Contains(t, stdout, "empty")
	})

	t.Run("agent falls back to the model", func(t *testing.T) {
		t.Parallel()

		server := fakeOllama(t, "<query>report</query>")

		stdout, _, err := run(t, db, "--backend", "sqlite", "--ollama-url", server.URL, "agent", "where is my quarterly report")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Found 1 files matching 'report'.")
		assert.Contains(t, stdout, "report.pdf")
	})

	t.Run("agent reports unreachable model", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := run(t, db, "--backend", "sqlite", "--ollama-url", "http://127.0.0.1:1", "agent", "where is my quarterly report")

		require.Error(t, err)
		assert.Contains(t, stderr, "error:")
	})

	t.Run("health", func(t *testing.T) {
		t.Parallel()

		server := fakeOllama(t, "")

		stdout, _, err := run(t, db, "--backend", "sqlite", "--ollama-url", server.URL, "health")

		require.NoError(t, err)
		assert.Contains(t, stdout, "model:  OK")
		assert.Contains(t, stdout, "search: OK  Connected, 5 items indexed")
	})
}

func TestMain_Run_Ask(t *testing.T) {
	t.Parallel()

	server := fakeOllama(t, "Paris")

	stdout, stderr, err := run(t, filepath.Join(t.TempDir(), "lumi.db"), "--ollama-url", server.URL, "ask", "Capital of France?")

	require.NoError(t, err)
	assert.Equal(t, "Paris\n", stdout)
	assert.Contains(t, stderr, "msg=ask")
}

func TestMain_Run_Extract(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# Notes\n\nBuy milk."), 0o644))

	t.Run("prints markdown", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, filepath.Join(t.TempDir(), "lumi.db"), "extract", path)

		require.NoError(t, err)
		assert.Equal(t, "# Notes\n\nBuy milk.\n", stdout)
	})

	t.Run("rejects unsupported format", func(t *testing.T) {
		t.Parallel()

		other := filepath.Join(dir, "image.png")
		require.NoError(t, os.WriteFile(other, []byte{0x89, 'P', 'N', 'G'}, 0o644))

		_, stderr, err := run(t, filepath.Join(t.TempDir(), "lumi.db"), "extract", other)

		require.Error(t, err)
		assert.Contains(t, stderr, "unsupported file format")
	})
}

func TestMain_Run_GeminiRequiresKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, stderr, err := run(t, filepath.Join(t.TempDir(), "lumi.db"), "--provider", "gemini", "ask", "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	assert.Contains(t, stderr, "aistudio.google.com")
}
