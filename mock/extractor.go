package mock

import (
	"net/url"

	"github.com/fwojciec/distill"
	"golang.org/x/net/html"
)

var _ distill.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of distill.Extractor.
type Extractor struct {
	ExtractFn func(doc *html.Node, baseURL *url.URL) (*distill.Article, error)
}

func (e *Extractor) Extract(doc *html.Node, baseURL *url.URL) (*distill.Article, error) {
	return e.ExtractFn(doc, baseURL)
}
