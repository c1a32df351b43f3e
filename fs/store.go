package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/distill"
)

// Ensure FileStore implements distill.ExtractionStore at compile time.
var _ distill.ExtractionStore = (*FileStore)(nil)

// FileStore implements distill.ExtractionStore with atomic update semantics.
// Extractions are staged through a Writer into a temporary directory, then
// moved atomically on Commit, so a failed batch never leaves a half-written
// output directory.
type FileStore struct {
	baseDir string
	name    string
	staging *Writer
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		staging: NewWriter(filepath.Join(baseDir, name+".tmp")),
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save stages ext in the temporary directory.
func (s *FileStore) Save(ctx context.Context, ext *distill.Extraction) error {
	return s.staging.CreateExtraction(ctx, ext)
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
