package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRenderPaths(t *testing.T) {
	t.Parallel()

	t.Run("renders a single file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "a.md", "**lorem** ipsum")

		out, err := renderPaths([]string{path})
		require.NoError(t, err)
		assert.Equal(t, "\x1b[1mlorem\x1b[22m ipsum\n", out)
	})

	t.Run("concatenates files in argument order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		first := writeFile(t, dir, "a.md", "first")
		second := writeFile(t, dir, "b.md", "second")

		out, err := renderPaths([]string{first, second})
		require.NoError(t, err)
		assert.Equal(t, "first\n\nsecond\n", out)
	})

	t.Run("unreadable file yields an error and no output", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		first := writeFile(t, dir, "a.md", "first")
		missing := filepath.Join(dir, "missing.md")

		out, err := renderPaths([]string{first, missing})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.md")
		assert.Empty(t, out)
	})

	t.Run("paragraphs keep a blank line between them", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writeFile(t, dir, "a.md", "lorem\n\nipsum")

		out, err := renderPaths([]string{path})
		require.NoError(t, err)
		assert.Equal(t, "lorem\n\nipsum\n", out)
	})
}

func TestTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.md", title([]string{"a.md"}))
	assert.Equal(t, "a.md (+2 more)", title([]string{"a.md", "b.md", "c.md"}))
}
