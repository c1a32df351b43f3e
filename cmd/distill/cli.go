package main

import (
	"context"
	"io"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/batch"
	"github.com/fwojciec/distill/parse"
	"github.com/fwojciec/distill/readability"
	"github.com/fwojciec/distill/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Extractions distill.ExtractionService
	Parser      *parse.Parser
	Readability *readability.Extractor
	Converter   distill.Converter
	Runner      *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each extraction to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract readable content from an HTML document"`
	Batch   BatchCmd   `cmd:"" help:"Extract a set of HTML files and record the results"`
	Check   CheckCmd   `cmd:"" help:"Check whether a document has extractable content"`
	Results ResultsCmd `cmd:"" help:"List recorded extractions"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File   string `arg:"" optional:"" help:"HTML file (reads stdin when omitted)"`
	URL    string `short:"u" help:"Base URL for resolving relative links"`
	Format string `short:"f" default:"json" enum:"json,html,text,markdown" help:"Output format"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Files       []string `arg:"" help:"HTML files to extract"`
	URL         string   `short:"u" help:"Base URL applied to every file"`
	Out         string   `short:"o" help:"Write output files under this directory"`
	Markdown    bool     `short:"m" help:"Convert extracted content to Markdown"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent extraction limit"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	File string `arg:"" optional:"" help:"HTML file (reads stdin when omitted)"`
}

// ResultsCmd is the "results" subcommand.
type ResultsCmd struct {
	Source string `help:"Filter by source file"`
	Limit  int    `default:"20" help:"Maximum number of rows"`
	Full   bool   `help:"Show full extracted content"`
}
