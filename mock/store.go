package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var _ distill.ExtractionStore = (*ExtractionStore)(nil)

// ExtractionStore is a mock implementation of distill.ExtractionStore.
type ExtractionStore struct {
	SaveFn   func(ctx context.Context, ext *distill.Extraction) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ExtractionStore) Save(ctx context.Context, ext *distill.Extraction) error {
	return s.SaveFn(ctx, ext)
}

func (s *ExtractionStore) Commit() error {
	return s.CommitFn()
}

func (s *ExtractionStore) Abort() error {
	return s.AbortFn()
}
