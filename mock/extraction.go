package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var _ distill.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of distill.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, ext *distill.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*distill.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter distill.ExtractionFilter) ([]*distill.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, ext *distill.Extraction) error {
	return s.CreateExtractionFn(ctx, ext)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*distill.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter distill.ExtractionFilter) ([]*distill.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
