// Package readability extracts the main readable content from HTML
// documents. Candidate blocks are scored on text density, punctuation,
// and class/id heuristics; scores propagate to ancestors so that the
// element enclosing the densest prose wins. The selected subtree is then
// cleaned of boilerplate and returned with its metadata.
package readability

import (
	"net/url"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/dom"
	"golang.org/x/net/html"
)

// Ensure Extractor implements distill.Extractor at compile time.
var _ distill.Extractor = (*Extractor)(nil)

// Options tunes content selection. Start from DefaultOptions.
type Options struct {
	// MinScore is the selection threshold. When no candidate reaches it
	// the extractor falls back to the largest text-bearing block.
	MinScore float64

	// MinTextLen is the minimum direct-text length, in runes, for a
	// block to contribute to scoring.
	MinTextLen int

	// ExcerptLen is the target excerpt length in runes.
	ExcerptLen int

	// Scoring is the keyword weight table used to rate candidates. Nil
	// selects DefaultScoring.
	Scoring *Scoring
}

// DefaultOptions returns the tuning used by NewExtractor.
func DefaultOptions() Options {
	return Options{MinScore: 1, MinTextLen: 25, ExcerptLen: 150, Scoring: DefaultScoring()}
}

// Extractor finds the main readable content of HTML documents. It is
// immutable after construction and safe for concurrent use: every call
// operates on a private clone of its input tree.
type Extractor struct {
	opts Options
}

// NewExtractor creates a new Extractor with DefaultOptions.
func NewExtractor() *Extractor {
	return NewExtractorWithOptions(DefaultOptions())
}

// NewExtractorWithOptions creates a new Extractor with the given tuning.
// A nil opts.Scoring falls back to DefaultScoring.
func NewExtractorWithOptions(opts Options) *Extractor {
	if opts.Scoring == nil {
		opts.Scoring = DefaultScoring()
	}
	return &Extractor{opts: opts}
}

// Extract scores candidate blocks in doc and returns the winning block's
// content with its metadata. The input tree is never modified. Relative
// links are resolved against baseURL when it is non-nil. A document with
// no usable content yields an empty Article, not an error.
func (e *Extractor) Extract(doc *html.Node, baseURL *url.URL) (*distill.Article, error) {
	if doc == nil {
		return nil, distill.Errorf(distill.EINVALID, "document required")
	}

	root := dom.Clone(doc)
	p := &pass{
		opts: e.opts,
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
		base: baseURL,
	}
	return p.run(), nil
}

// pass holds the call-local state of one extraction: the cloned tree, its
// goquery wrapper, and the base URL. Nothing here outlives the call.
type pass struct {
	opts Options
	root *html.Node
	doc  *goquery.Document
	base *url.URL
}

func (p *pass) run() *distill.Article {
	p.preClean()

	winner := p.selectContent()
	if winner == nil {
		return &distill.Article{}
	}

	// Metadata that post-processing would destroy is captured first: the
	// title fallback reads <h1> before heading demotion, and the byline
	// node is detached from the content.
	title := p.title(winner)
	byline := p.byline(winner)

	p.postProcess(winner)

	text := dom.InnerText(winner)
	if text == "" {
		return &distill.Article{Title: title, Byline: byline}
	}
	return &distill.Article{
		Title:       title,
		Byline:      byline,
		Excerpt:     p.excerpt(text),
		Content:     renderContent(winner),
		TextContent: text,
		Length:      utf8.RuneCountInString(text),
		SiteName:    p.siteName(),
	}
}

// renderContent serializes the winning subtree. A structural root like
// <body> is rendered as a neutral fragment instead of leaking page tags.
func renderContent(winner *html.Node) string {
	if tag := dom.TagName(winner); tag == "body" || tag == "html" {
		return "<div>" + dom.InnerHTML(winner) + "</div>"
	}
	return dom.OuterHTML(winner)
}
