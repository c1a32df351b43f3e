package distill

import (
	"net/url"

	"golang.org/x/net/html"
)

// Extractor finds the main readable content in a parsed HTML document.
type Extractor interface {
	// Extract scores candidate blocks in doc and returns the winning
	// block's content with its metadata. The input tree is not modified.
	// Relative links in the content are resolved against baseURL when it
	// is non-nil. A document with no usable content yields an empty
	// Article, not an error.
	Extract(doc *html.Node, baseURL *url.URL) (*Article, error)
}
