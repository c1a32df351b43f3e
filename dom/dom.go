// Package dom parses HTML into a node tree and provides the node-level
// operations the extraction pipeline needs: attribute access, tree surgery,
// traversal, text extraction, and rendering.
//
// Parsing is tolerant. Malformed markup is repaired the way browsers repair
// it (implied tags, auto-closed elements, literal text for broken entities)
// and never produces an error.
package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ParseBytes parses b into a document node, sniffing the character
// encoding (BOM, meta charset, content heuristics) and decoding to UTF-8
// first. It never fails: undecodable input falls back to a raw parse.
func ParseBytes(b []byte) *html.Node {
	if r, err := charset.NewReader(bytes.NewReader(b), ""); err == nil {
		if doc, err := html.Parse(r); err == nil {
			return doc
		}
	}
	return ParseString(string(b))
}

// ParseString parses src, which must already be UTF-8, into a document
// node. It never fails: the HTML5 algorithm repairs malformed markup
// instead of rejecting it, and a string reader cannot produce read errors.
func ParseString(src string) *html.Node {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return &html.Node{Type: html.DocumentNode}
	}
	return doc
}
