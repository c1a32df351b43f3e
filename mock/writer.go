package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var _ distill.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of distill.ExtractionWriter.
type ExtractionWriter struct {
	CreateExtractionFn func(ctx context.Context, ext *distill.Extraction) error
}

func (w *ExtractionWriter) CreateExtraction(ctx context.Context, ext *distill.Extraction) error {
	return w.CreateExtractionFn(ctx, ext)
}
