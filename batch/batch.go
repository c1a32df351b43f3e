// Package batch provides bulk extraction orchestration.
// It coordinates reading, extraction, conversion, and storage of
// HTML documents taken from the local filesystem.
package batch

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/parse"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates the extraction of a set of HTML files.
// Converter and Store are optional: without a Converter the extracted
// content stays HTML, and without a Store no output files are written.
type Runner struct {
	Parser      *parse.Parser
	Converter   distill.Converter
	Extractions distill.ExtractionWriter
	Store       distill.ExtractionStore
	BaseURL     string
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	File      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of processing a single file.
type fileResult struct {
	position   int
	file       string
	extraction *distill.Extraction
	err        error
}

// Run extracts every file and persists the results in input order.
// The progress callback, if provided, receives events as extraction proceeds.
func (r *Runner) Run(ctx context.Context, files []string, progress ProgressFunc) (*Result, error) {
	if len(files) == 0 {
		return &Result{}, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	// Channel for collecting results
	resultCh := make(chan fileResult, len(files))

	// Progress tracking
	var completed atomic.Int64
	total := len(files)

	// Notify start
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	// Start workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, file := range files {
			i, file := i, file
			g.Go(func() error {
				result := r.processFile(gctx, i, file)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]fileResult, len(files))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					File:      result.file,
					Error:     result.err,
				})
			}
		} else {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					File:      result.file,
				})
			}
		}
	}

	// Persist extractions and accumulate stats
	var savedCount int
	var totalBytes int

	for _, result := range results {
		if result.err != nil {
			continue
		}

		if r.Extractions != nil {
			if err := r.Extractions.CreateExtraction(ctx, result.extraction); err != nil {
				failedCount++
				continue
			}
		}

		if r.Store != nil {
			if err := r.Store.Save(ctx, result.extraction); err != nil {
				failedCount++
				continue
			}
		}

		savedCount++
		totalBytes += len(result.extraction.Content)
	}

	// An empty staging area has nothing worth committing, and committing
	// it would clobber output from a previous successful run.
	if r.Store != nil {
		if savedCount == 0 {
			_ = r.Store.Abort()
		} else if err := r.Store.Commit(); err != nil {
			return nil, err
		}
	}

	// Notify finished
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:  savedCount,
		Failed: failedCount,
		Bytes:  totalBytes,
	}, nil
}

// processFile reads and extracts a single HTML file.
func (r *Runner) processFile(ctx context.Context, position int, file string) fileResult {
	result := fileResult{
		position: position,
		file:     file,
	}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		result.err = err
		return result
	}

	parsed, err := r.Parser.Parse(string(raw), r.BaseURL)
	if err != nil {
		result.err = err
		return result
	}

	content := parsed.Content
	if r.Converter != nil && content != "" {
		converted, err := r.Converter.Convert(content)
		if err != nil {
			result.err = err
			return result
		}
		content = converted
	}

	ext := &distill.Extraction{
		ID:          parsed.ID,
		Source:      file,
		BaseURL:     r.BaseURL,
		Title:       parsed.Title,
		Excerpt:     parsed.Excerpt,
		Content:     content,
		TextContent: parsed.TextContent,
		Length:      parsed.Length,
	}
	if parsed.Byline != nil {
		ext.Byline = *parsed.Byline
	}
	if parsed.SiteName != nil {
		ext.SiteName = *parsed.SiteName
	}
	result.extraction = ext

	return result
}
