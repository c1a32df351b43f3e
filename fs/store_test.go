package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Batch Output
// The store uses a temp directory for atomic updates

func testExtraction(source string) *distill.Extraction {
	return &distill.Extraction{
		ID:          "ext-" + source,
		Source:      source,
		Title:       "Story",
		Content:     "# Story\n\nBody text.",
		ExtractedAt: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")

	// When I save an extraction
	err := store.Save(context.Background(), testExtraction("https://example.com/stories/morning"))

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	tempPath := filepath.Join(base, "output.tmp", "stories", "morning.md")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	// And final directory does not exist yet
	finalPath := filepath.Join(base, "output", "stories", "morning.md")
	_, err = os.Stat(finalPath)
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given a store with saved extractions
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	err := store.Save(context.Background(), testExtraction("https://example.com/a"))
	require.NoError(t, err)

	// When I commit
	err = store.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And final directory exists with content
	finalPath := filepath.Join(base, "output", "a.md")
	_, err = os.Stat(finalPath)
	require.NoError(t, err, "file should exist in final directory after commit")

	// And temp directory is gone
	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitReplacesExistingOutput(t *testing.T) {
	t.Parallel()

	// Given a committed output directory
	base := t.TempDir()
	first := fs.NewFileStore(base, "output")
	require.NoError(t, first.Save(context.Background(), testExtraction("https://example.com/old")))
	require.NoError(t, first.Commit())

	// When a second run commits different content
	second := fs.NewFileStore(base, "output")
	require.NoError(t, second.Save(context.Background(), testExtraction("https://example.com/new")))
	require.NoError(t, second.Commit())

	// Then only the second run's content remains
	_, err := os.Stat(filepath.Join(base, "output", "new.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "output", "old.md"))
	assert.True(t, os.IsNotExist(err), "stale output should be replaced on commit")
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with saved extractions
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	err := store.Save(context.Background(), testExtraction("https://example.com/a"))
	require.NoError(t, err)

	// When I abort
	err = store.Abort()

	// Then no error occurs
	require.NoError(t, err)

	// And temp directory is cleaned up
	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And final directory doesn't exist
	finalDir := filepath.Join(base, "output")
	_, err = os.Stat(finalDir)
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_IncludesFrontmatter(t *testing.T) {
	t.Parallel()

	// Given an extraction with metadata
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	ext := testExtraction("https://example.com/intro")
	ext.Title = "Introduction"
	err := store.Save(context.Background(), ext)
	require.NoError(t, err)
	err = store.Commit()
	require.NoError(t, err)

	// When I read the file
	content, err := os.ReadFile(filepath.Join(base, "output", "intro.md"))
	require.NoError(t, err)

	// Then it has YAML frontmatter
	assert.Contains(t, string(content), "---")
	assert.Contains(t, string(content), "source: https://example.com/intro")
	assert.Contains(t, string(content), "title: Introduction")
	// And content follows the frontmatter
	assert.Contains(t, string(content), "# Story")
}

func TestFileStore_PreservesSourcePathStructure(t *testing.T) {
	t.Parallel()

	// Given extractions with nested source paths
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")
	err := store.Save(context.Background(), testExtraction("https://example.com/news/local/story"))
	require.NoError(t, err)
	err = store.Commit()
	require.NoError(t, err)

	// Then nested directories are created
	expectedPath := filepath.Join(base, "output", "news", "local", "story.md")
	_, err = os.Stat(expectedPath)
	require.NoError(t, err, "nested path structure should be preserved")
}

func TestFileStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	// Given a store
	base := t.TempDir()
	store := fs.NewFileStore(base, "output")

	// When I try to save an extraction with path traversal in its source
	err := store.Save(context.Background(), testExtraction("https://example.com/../../../etc/passwd"))

	// Then an error is returned
	require.Error(t, err, "path traversal should be rejected")
	assert.Contains(t, err.Error(), "path traversal")
}
