package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/distill"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	src, err := readInput(c.File, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	result, err := deps.Parser.Parse(src, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "html":
		fmt.Fprintln(deps.Stdout, result.Content)
	case "text":
		fmt.Fprintln(deps.Stdout, result.TextContent)
	case "markdown":
		if result.Content == "" {
			return nil
		}
		markdown, err := deps.Converter.Convert(result.Content)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, markdown)
	default:
		data, err := result.JSON()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
	}

	return nil
}

// readInput reads the named file, or stdin when no file was given.
func readInput(file string, stdin io.Reader) (string, error) {
	if file == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
