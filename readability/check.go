package readability

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/distill/dom"
	"golang.org/x/net/html"
)

const (
	// readerableMinTextLen is the visible-text floor below which a block
	// says nothing about readability.
	readerableMinTextLen = 140

	// readerableThreshold is the accumulated score past which a document
	// counts as readerable.
	readerableThreshold = 20
)

// Readerable reports whether doc likely contains extractable article
// content, without running the full pipeline. Text-bearing paragraph-like
// blocks accumulate a square-root-scaled score; clearing the threshold
// means a full Extract is worth the cost.
func (e *Extractor) Readerable(doc *html.Node) bool {
	if doc == nil {
		return false
	}

	var nodes []*html.Node
	for n := range dom.ElementsByTag(doc, "p", "pre", "article") {
		nodes = append(nodes, n)
	}

	// Bare text separated by <br> inside a div reads like paragraphs
	// too; count each such div once.
	seen := make(map[*html.Node]bool)
	for br := range dom.ElementsByTag(doc, "br") {
		parent := elementParent(br)
		if parent != nil && dom.TagName(parent) == "div" && !seen[parent] {
			seen[parent] = true
			nodes = append(nodes, parent)
		}
	}

	score := 0.0
	for _, n := range nodes {
		match := dom.ClassName(n) + " " + dom.ID(n)
		if rxUnlikely.MatchString(match) && !rxMaybeCandidate.MatchString(match) {
			continue
		}
		textLen := utf8.RuneCountInString(strings.TrimSpace(dom.TextContent(n)))
		if textLen < readerableMinTextLen {
			continue
		}
		score += math.Sqrt(float64(textLen - readerableMinTextLen))
		if score > readerableThreshold {
			return true
		}
	}
	return false
}
