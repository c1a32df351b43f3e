package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// OuterHTML renders n and its subtree as HTML.
func OuterHTML(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

// InnerHTML renders n's subtree without n's own tags.
func InnerHTML(n *html.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			return ""
		}
	}
	return sb.String()
}
