package main

import (
	"fmt"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/batch"
)

// Run executes the results command.
func (c *ResultsCmd) Run(deps *Dependencies) error {
	filter := distill.ExtractionFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions found. Use 'distill batch' to create some.")
		return nil
	}

	if c.Full {
		for _, ext := range extractions {
			fmt.Fprintf(deps.Stdout, "=== %s (%s)\n\n%s\n\n", ext.Title, ext.Source, ext.Content)
		}
		return nil
	}

	for _, ext := range extractions {
		title := ext.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			ext.ID, ext.ExtractedAt.Format("2006-01-02"),
			title, batch.TruncateSource(ext.Source, 60))
	}

	return nil
}
