package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionService_CreateExtraction(t *testing.T) {
	t.Parallel()

	t.Run("stores extraction with caller id, computed hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		ext := &distill.Extraction{
			ID:      "ext-1",
			Source:  "https://example.com/stories/homecoming",
			Title:   "The Long Road Home",
			Content: "<p>After three decades abroad.</p>",
		}

		err := svc.CreateExtraction(ctx, ext)
		require.NoError(t, err)

		assert.Equal(t, "ext-1", ext.ID, "caller id should be kept")
		assert.NotEmpty(t, ext.ContentHash, "ContentHash should be computed")
		assert.False(t, ext.ExtractedAt.IsZero(), "ExtractedAt should be set")
	})

	t.Run("returns error for invalid extraction", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		ext := &distill.Extraction{} // missing required fields

		err := svc.CreateExtraction(ctx, ext)
		require.Error(t, err)
		assert.Equal(t, distill.EINVALID, distill.ErrorCode(err))
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		ext := &distill.Extraction{ID: "ext-1", Source: "https://example.com/a"}
		require.NoError(t, svc.CreateExtraction(ctx, ext))

		dup := &distill.Extraction{ID: "ext-1", Source: "https://example.com/b"}
		err := svc.CreateExtraction(ctx, dup)
		require.Error(t, err)
	})

	t.Run("identical content produces identical hashes", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		first := &distill.Extraction{ID: "ext-1", Source: "https://example.com/a", Content: "<p>Same.</p>"}
		second := &distill.Extraction{ID: "ext-2", Source: "https://example.com/b", Content: "<p>Same.</p>"}
		third := &distill.Extraction{ID: "ext-3", Source: "https://example.com/c", Content: "<p>Different.</p>"}
		require.NoError(t, svc.CreateExtraction(ctx, first))
		require.NoError(t, svc.CreateExtraction(ctx, second))
		require.NoError(t, svc.CreateExtraction(ctx, third))

		assert.Equal(t, first.ContentHash, second.ContentHash)
		assert.NotEqual(t, first.ContentHash, third.ContentHash)
	})
}

func TestExtractionService_FindExtractionByID(t *testing.T) {
	t.Parallel()

	t.Run("returns extraction with all fields when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		ext := &distill.Extraction{
			ID:          "ext-1",
			Source:      "https://example.com/stories/homecoming",
			BaseURL:     "https://example.com",
			Title:       "The Long Road Home",
			Byline:      "Jane Doe",
			Excerpt:     "After three decades abroad.",
			Content:     "<p>After three decades abroad.</p>",
			TextContent: "After three decades abroad.",
			Length:      27,
			SiteName:    "Example News",
		}
		require.NoError(t, svc.CreateExtraction(ctx, ext))

		found, err := svc.FindExtractionByID(ctx, ext.ID)
		require.NoError(t, err)
		assert.Equal(t, ext.ID, found.ID)
		assert.Equal(t, ext.Source, found.Source)
		assert.Equal(t, ext.BaseURL, found.BaseURL)
		assert.Equal(t, ext.Title, found.Title)
		assert.Equal(t, ext.Byline, found.Byline)
		assert.Equal(t, ext.Excerpt, found.Excerpt)
		assert.Equal(t, ext.Content, found.Content)
		assert.Equal(t, ext.TextContent, found.TextContent)
		assert.Equal(t, ext.Length, found.Length)
		assert.Equal(t, ext.SiteName, found.SiteName)
		assert.Equal(t, ext.ContentHash, found.ContentHash)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		_, err := svc.FindExtractionByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, distill.ENOTFOUND, distill.ErrorCode(err))
	})
}

func TestExtractionService_FindExtractions(t *testing.T) {
	t.Parallel()

	t.Run("returns all extractions with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			ext := &distill.Extraction{
				ID:     fmt.Sprintf("ext-%d", i+1),
				Source: fmt.Sprintf("https://example.com/stories/page%d", i+1),
			}
			require.NoError(t, svc.CreateExtraction(ctx, ext))
		}

		exts, err := svc.FindExtractions(ctx, distill.ExtractionFilter{})
		require.NoError(t, err)
		assert.Len(t, exts, 3)
	})

	t.Run("filters by id", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateExtraction(ctx, &distill.Extraction{ID: "ext-1", Source: "https://example.com/a"}))
		require.NoError(t, svc.CreateExtraction(ctx, &distill.Extraction{ID: "ext-2", Source: "https://example.com/b"}))

		id := "ext-2"
		exts, err := svc.FindExtractions(ctx, distill.ExtractionFilter{ID: &id})
		require.NoError(t, err)
		require.Len(t, exts, 1)
		assert.Equal(t, "ext-2", exts[0].ID)
	})

	t.Run("filters by source", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		source := "https://example.com/stories/unique-page"
		require.NoError(t, svc.CreateExtraction(ctx, &distill.Extraction{ID: "ext-1", Source: source}))
		require.NoError(t, svc.CreateExtraction(ctx, &distill.Extraction{
			ID:     "ext-2",
			Source: "https://example.com/stories/other",
		}))

		exts, err := svc.FindExtractions(ctx, distill.ExtractionFilter{Source: &source})
		require.NoError(t, err)
		require.Len(t, exts, 1)
		assert.Equal(t, source, exts[0].Source)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			ext := &distill.Extraction{
				ID:     fmt.Sprintf("ext-%d", i+1),
				Source: fmt.Sprintf("https://example.com/stories/page%d", i+1),
			}
			require.NoError(t, svc.CreateExtraction(ctx, ext))
		}

		exts, err := svc.FindExtractions(ctx, distill.ExtractionFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, exts, 2)
	})

	t.Run("sorts by source when SortBy is source", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		// Create extractions with sources out of order
		for i, suffix := range []string{"c", "a", "b"} {
			ext := &distill.Extraction{
				ID:     fmt.Sprintf("ext-%d", i+1),
				Source: "https://example.com/stories/" + suffix,
			}
			require.NoError(t, svc.CreateExtraction(ctx, ext))
		}

		exts, err := svc.FindExtractions(ctx, distill.ExtractionFilter{SortBy: distill.SortBySource})
		require.NoError(t, err)
		require.Len(t, exts, 3)
		assert.Equal(t, "https://example.com/stories/a", exts[0].Source)
		assert.Equal(t, "https://example.com/stories/b", exts[1].Source)
		assert.Equal(t, "https://example.com/stories/c", exts[2].Source)
	})
}

func TestExtractionService_DeleteExtraction(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing extraction", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		ext := &distill.Extraction{ID: "ext-1", Source: "https://example.com/stories/page1"}
		require.NoError(t, svc.CreateExtraction(ctx, ext))

		err := svc.DeleteExtraction(ctx, ext.ID)
		require.NoError(t, err)

		_, err = svc.FindExtractionByID(ctx, ext.ID)
		assert.Equal(t, distill.ENOTFOUND, distill.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewExtractionService(db)
		ctx := context.Background()

		err := svc.DeleteExtraction(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, distill.ENOTFOUND, distill.ErrorCode(err))
	})
}
