package markdown

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_FrontmatterTitleWins(t *testing.T) {
	page, err := Parse([]byte("---\ntitle: From Frontmatter\n---\n# From Heading\n"))
	require.NoError(t, err)
	require.Equal(t, "From Frontmatter", page.Title())
	require.Equal(t, "From Heading", page.Heading)
}

func TestParse_HeadingFallback(t *testing.T) {
	page, err := Parse([]byte("Intro text\n\n## Not this\n\n# The `Window` *Tutorial*\n\n# Second\n"))
	require.NoError(t, err)
	require.Equal(t, "The Window Tutorial", page.Title())
	require.Empty(t, page.Frontmatter)
}

func TestParse_SetextHeading(t *testing.T) {
	page, err := Parse([]byte("Pipeline\n========\n\nbody\n"))
	require.NoError(t, err)
	require.Equal(t, "Pipeline", page.Title())
}

func TestParse_BlankFrontmatterTitle(t *testing.T) {
	page, err := Parse([]byte("---\ntitle: \"  \"\nlayout: page\n---\n# Heading\n"))
	require.NoError(t, err)
	require.Equal(t, "Heading", page.Title())
	require.Equal(t, "page", page.Frontmatter["layout"])
}

func TestParse_CRLF(t *testing.T) {
	page, err := Parse([]byte("---\r\ntitle: Windows\r\n---\r\n# H\r\n"))
	require.NoError(t, err)
	require.Equal(t, "Windows", page.Title())
}

func TestParse_EmptyFrontmatter(t *testing.T) {
	page, err := Parse([]byte("---\n---\n# Only Heading\n"))
	require.NoError(t, err)
	require.Equal(t, "Only Heading", page.Title())
}

func TestParse_FrontmatterOnly(t *testing.T) {
	page, err := Parse([]byte("---\ntitle: Bare\n---"))
	require.NoError(t, err)
	require.Equal(t, "Bare", page.Title())
}

func TestParse_MissingClosingDelimiter(t *testing.T) {
	_, err := Parse([]byte("---\ntitle: x\n# Title\n"))
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParse_InvalidFrontmatter(t *testing.T) {
	_, err := Parse([]byte("---\ntitle: [unclosed\n---\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid frontmatter")
}

func TestParse_NoHeading(t *testing.T) {
	page, err := Parse([]byte("just text\n"))
	require.NoError(t, err)
	require.Empty(t, page.Title())
}

func TestReadPage(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(p, []byte("# 依赖与窗口\n"), 0o600))

	page, err := ReadPage(p)
	require.NoError(t, err)
	require.Equal(t, "依赖与窗口", page.Title())

	_, err = ReadPage(filepath.Join(dir, "missing.md"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
