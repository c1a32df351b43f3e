// Package parse turns raw HTML plus a base URL into a serializable
// extraction result. It is the pure-Go pipeline behind the C library:
// parse the markup, extract the article, assemble a Result under a
// freshly minted id.
package parse

import (
	"net/url"
	"strings"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/dom"
	"github.com/google/uuid"
)

// Parser runs the extraction pipeline on raw HTML strings.
type Parser struct {
	Extractor distill.Extractor
}

// Parse extracts the readable content of htmlSrc and packages it as a
// Result. Input in a legacy encoding is detected and decoded before
// parsing, so callers can pass file contents as read. Two calls with
// identical inputs produce identical results except for the id.
// baseURL anchors relative links; a value that is not an absolute URL
// is treated as absent rather than an error, leaving links unresolved.
func (p *Parser) Parse(htmlSrc, baseURL string) (*distill.Result, error) {
	doc := dom.ParseBytes([]byte(htmlSrc))
	article, err := p.Extractor.Extract(doc, parseBase(baseURL))
	if err != nil {
		return nil, err
	}
	return distill.NewResult(uuid.NewString(), article), nil
}

// parseBase reads baseURL leniently: only an absolute URL with a scheme
// and host can anchor relative references, anything else means no base.
func parseBase(baseURL string) *url.URL {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || base.Scheme == "" || base.Hostname() == "" {
		return nil
	}
	return base
}
