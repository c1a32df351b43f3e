package main

import (
	"fmt"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/dom"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	src, err := readInput(c.File, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	doc := dom.ParseString(src)
	if deps.Readability.Readerable(doc) {
		fmt.Fprintln(deps.Stdout, "readerable")
		return nil
	}

	fmt.Fprintln(deps.Stdout, "not readerable")
	return distill.Errorf(distill.EINVALID, "no extractable content detected")
}
