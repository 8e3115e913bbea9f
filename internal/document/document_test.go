package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FrontMatter(t *testing.T) {
	path := writeFile(t, "note.md", "---\ntitle: Weekly Notes\ntags: [a, b]\n---\n# Heading\nbody\n")

	doc, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Weekly Notes", doc.Title)
	assert.Equal(t, "# Heading\nbody", strings.TrimSpace(doc.Markdown))
	assert.Equal(t, FormatMarkdown, doc.Format)
	assert.Contains(t, doc.Meta, "tags")
}

func TestLoad_TitleFallbacks(t *testing.T) {
	path := writeFile(t, "draft-post.md", "intro\n\n# First *Title*\n## Second\n")
	doc, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "First Title", doc.Title)

	path = writeFile(t, "draft-post.md", "no headings here\n")
	doc, err = Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "draft-post", doc.Title)

	doc, err = Load(path, LoadOptions{Title: "Override"})
	require.NoError(t, err)
	assert.Equal(t, "Override", doc.Title)
}

func TestLoad_HTML(t *testing.T) {
	html := `<html><head><title>Page Title</title><script>var x;</script></head>
<body><nav>menu</nav><main><h1>Hello</h1><p>Some <strong>bold</strong> text.</p></main>
<footer>footer</footer></body></html>`
	path := writeFile(t, "page.html", html)

	doc, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, doc.Format)
	assert.Equal(t, "Page Title", doc.Title)
	assert.Contains(t, doc.Markdown, "# Hello")
	assert.Contains(t, doc.Markdown, "**bold**")
	assert.NotContains(t, doc.Markdown, "menu")
	assert.NotContains(t, doc.Markdown, "footer")
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.md"), LoadOptions{})
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatHTML, DetectFormat("a/b.HTM"))
	assert.Equal(t, FormatMarkdown, DetectFormat("a/b.md"))
	assert.Equal(t, FormatMarkdown, DetectFormat("README"))
}

func TestFirstHeading(t *testing.T) {
	assert.Equal(t, "Title x", FirstHeading("## sub\n# Title `x`\n# Later"))
	assert.Equal(t, "", FirstHeading("plain"))
}
