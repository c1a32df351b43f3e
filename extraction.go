package distill

import (
	"context"
	"time"
)

// Extraction is a stored extraction result: an Article plus provenance.
type Extraction struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	BaseURL     string    `json:"baseUrl"`
	Title       string    `json:"title"`
	Byline      string    `json:"byline"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	TextContent string    `json:"textContent"`
	Length      int       `json:"length"`
	SiteName    string    `json:"siteName"`
	ContentHash string    `json:"contentHash"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "extraction ID required")
	}
	if e.Source == "" {
		return Errorf(EINVALID, "extraction source required")
	}
	return nil
}

// ExtractionWriter writes extractions to storage.
type ExtractionWriter interface {
	CreateExtraction(ctx context.Context, ext *Extraction) error
}

// ExtractionStore persists extraction output files with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ExtractionStore interface {
	Save(ctx context.Context, ext *Extraction) error
	Commit() error
	Abort() error
}

// ExtractionService represents a service for managing stored extractions.
type ExtractionService interface {
	// CreateExtraction creates a new extraction record.
	CreateExtraction(ctx context.Context, ext *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// SortOrder represents the sort order for extraction queries.
type SortOrder string

// SortOrder constants for ExtractionFilter.
const (
	SortByExtractedAt SortOrder = "extracted_at"
	SortBySource      SortOrder = "source"
)

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
