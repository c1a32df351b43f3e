package dom

import (
	"iter"

	"golang.org/x/net/html"
)

// Walk returns a lazy pre-order iterator over n and every node beneath it,
// in document order. The sequence is restartable: ranging over it twice
// walks the tree twice.
func Walk(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		if n == nil {
			return
		}
		if !yield(n) {
			return
		}
		for d := range n.Descendants() {
			if !yield(d) {
				return
			}
		}
	}
}

// Elements returns a lazy iterator over the element nodes of n's subtree,
// n included when it is itself an element, in document order.
func Elements(n *html.Node) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for d := range Walk(n) {
			if d.Type == html.ElementNode && !yield(d) {
				return
			}
		}
	}
}

// ElementsByTag returns the element nodes of n's subtree matching any of
// the given lowercase tag names, in document order.
func ElementsByTag(n *html.Node, tags ...string) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for e := range Elements(n) {
			name := TagName(e)
			for _, tag := range tags {
				if name == tag {
					if !yield(e) {
						return
					}
					break
				}
			}
		}
	}
}

// FirstByTag returns the first element in n's subtree with the given tag,
// or nil when there is none.
func FirstByTag(n *html.Node, tag string) *html.Node {
	for e := range ElementsByTag(n, tag) {
		return e
	}
	return nil
}
