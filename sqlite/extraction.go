package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/distill"
)

// Compile-time interface verification.
var _ distill.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements distill.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateExtraction creates a new extraction record. The caller provides the
// id so the stored row keeps the identity minted during parsing; the service
// owns the content hash and the timestamp.
func (s *ExtractionService) CreateExtraction(ctx context.Context, ext *distill.Extraction) error {
	if err := ext.Validate(); err != nil {
		return err
	}

	ext.ExtractedAt = time.Now().UTC()
	ext.ContentHash = hashContent(ext.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, source, base_url, title, byline, excerpt, content, text_content, length, site_name, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ext.ID, ext.Source, ext.BaseURL, ext.Title, ext.Byline, ext.Excerpt, ext.Content,
		ext.TextContent, ext.Length, ext.SiteName, ext.ContentHash, ext.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*distill.Extraction, error) {
	var ext distill.Extraction
	var extractedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, base_url, title, byline, excerpt, content, text_content, length, site_name, content_hash, extracted_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&ext.ID, &ext.Source, &ext.BaseURL, &ext.Title, &ext.Byline, &ext.Excerpt,
		&ext.Content, &ext.TextContent, &ext.Length, &ext.SiteName, &ext.ContentHash, &extractedAt)

	if err == sql.ErrNoRows {
		return nil, distill.Errorf(distill.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	ext.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &ext, nil
}

// FindExtractions retrieves extractions matching the filter.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter distill.ExtractionFilter) ([]*distill.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, base_url, title, byline, excerpt, content, text_content, length, site_name, content_hash, extracted_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	switch filter.SortBy {
	case distill.SortBySource:
		query.WriteString(" ORDER BY source ASC")
	default:
		query.WriteString(" ORDER BY extracted_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exts []*distill.Extraction
	for rows.Next() {
		var ext distill.Extraction
		var extractedAt string

		if err := rows.Scan(&ext.ID, &ext.Source, &ext.BaseURL, &ext.Title, &ext.Byline, &ext.Excerpt,
			&ext.Content, &ext.TextContent, &ext.Length, &ext.SiteName, &ext.ContentHash, &extractedAt); err != nil {
			return nil, err
		}

		ext.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
		if err != nil {
			return nil, err
		}

		exts = append(exts, &ext)
	}

	return exts, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return distill.Errorf(distill.ENOTFOUND, "extraction not found")
	}

	return nil
}
