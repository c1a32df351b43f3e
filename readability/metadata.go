package readability

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/distill/dom"
	"golang.org/x/net/html"
)

// title prefers the document's <title>; when that is empty the first
// heading of the selected content stands in.
func (p *pass) title(winner *html.Node) string {
	if t := dom.NormalizeText(p.doc.Find("title").First().Text()); t != "" {
		return t
	}
	if h1 := dom.FirstByTag(winner, "h1"); h1 != nil {
		return dom.InnerText(h1)
	}
	return ""
}

// byline looks for an author attribution: the author and article:author
// meta tags first, then an element inside the content whose attributes
// carry byline vocabulary or whose text reads like "By <Name>". A matched
// content element is detached so the attribution does not repeat in the
// article body.
func (p *pass) byline(winner *html.Node) string {
	if meta := p.metaContent("author", "article:author"); isValidByline(meta) {
		return meta
	}

	for el := range dom.Elements(winner) {
		if el == winner {
			continue
		}
		rel, _ := dom.GetAttribute(el, "rel")
		match := dom.ClassName(el) + " " + dom.ID(el) + " " + rel
		text := dom.InnerText(el)
		if rel == "author" || rxByline.MatchString(match) || rxBylineText.MatchString(text) {
			if isValidByline(text) {
				dom.DetachNode(el)
				return text
			}
		}
	}
	return ""
}

// isValidByline accepts non-empty attributions under 100 runes.
func isValidByline(byline string) bool {
	byline = strings.TrimSpace(byline)
	n := utf8.RuneCountInString(byline)
	return n > 0 && n < 100
}

// excerpt is the leading text cut at a word boundary near ExcerptLen.
func (p *pass) excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= p.opts.ExcerptLen {
		return text
	}
	head := string(runes[:p.opts.ExcerptLen])
	if idx := strings.LastIndex(head, " "); idx > 0 {
		head = head[:idx]
	}
	return head + "…"
}

func (p *pass) siteName() string {
	return p.metaContent("og:site_name", "application-name")
}

// metaContent returns the content of the first meta tag whose name or
// property attribute equals one of keys, in document order.
func (p *pass) metaContent(keys ...string) string {
	var content string
	p.doc.Find("meta").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name := strings.ToLower(strings.TrimSpace(sel.AttrOr("name", "")))
		property := strings.ToLower(strings.TrimSpace(sel.AttrOr("property", "")))
		for _, key := range keys {
			if name != key && property != key {
				continue
			}
			if c := strings.TrimSpace(sel.AttrOr("content", "")); c != "" {
				content = c
				return false
			}
		}
		return true
	})
	return content
}
