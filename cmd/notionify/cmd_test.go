package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertCommand(t *testing.T) {
	path := writeTemp(t, "doc.md", "# Title\n\ntext $x$\n")
	out, err := run(t, "", "convert", path, "--blank-lines", "skip", "--compact")
	require.NoError(t, err)

	var blocks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &blocks))
	require.Len(t, blocks, 2)
	assert.Equal(t, "heading_1", blocks[0]["type"])
	assert.Equal(t, "paragraph", blocks[1]["type"])
}

func TestConvertCommand_Stdin(t *testing.T) {
	out, err := run(t, "***\n", "convert", "-", "--blank-lines", "paragraph", "--compact")
	require.NoError(t, err)
	assert.Contains(t, out, `"divider"`)
}

func TestConvertCommand_InvalidPolicy(t *testing.T) {
	_, err := run(t, "x", "convert", "--blank-lines", "sometimes")
	assert.Error(t, err)
	flagBlankLines = "paragraph"
}

func TestPreviewCommand(t *testing.T) {
	out, err := run(t, "- a\n- b\n$$\\alpha$$", "preview", "--format", "text", "--blank-lines", "skip")
	require.NoError(t, err)
	assert.Equal(t, "• a\n• b\n\nα\n", out)

	out, err = run(t, "# T", "preview", "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")

	_, err = run(t, "x", "preview", "--format", "pdf")
	assert.Error(t, err)
	flagFormat = "text"
}

func TestPublishCommand(t *testing.T) {
	var appended int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/pages":
			_, _ = io.WriteString(w, `{"id":"1f2e3d4c-5b6a-4978-8a9b-0c1d2e3f4a5b","url":"https://notion.so/new"}`)
		case r.Method == http.MethodPatch:
			var body struct {
				Children []json.RawMessage `json:"children"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			appended += len(body.Children)
			_, _ = io.WriteString(w, `{}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	path := writeTemp(t, "weekly.md", "# Weekly\n- one\n- two\n")
	out, err := run(t, "", "publish", path,
		"--token", "secret",
		"--parent", "1f2e3d4c5b6a49788a9b0c1d2e3f4a5b",
		"--api-url", srv.URL,
		"--blank-lines", "skip",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `"Weekly"`)
	assert.Contains(t, out, "https://notion.so/new")
	assert.Equal(t, 3, appended)
}
