package readability

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/distill/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// strippedTags are removed outright before scoring: non-content elements
// plus interactive chrome.
const strippedTags = "script,style,link,noscript,iframe,object,embed,nav,footer,aside,form,button,input,select,textarea"

// presentationalAttrs carry layout, not meaning, and are dropped from the
// extracted content.
var presentationalAttrs = map[string]bool{
	"align": true, "background": true, "bgcolor": true, "border": true,
	"cellpadding": true, "cellspacing": true, "frame": true, "hspace": true,
	"rules": true, "valign": true, "vspace": true,
}

// preClean strips elements that can never be content: comments, script
// and style machinery, page chrome, and anything whose class/id matches
// the boilerplate denylist.
func (p *pass) preClean() {
	p.doc.Find(strippedTags).Remove()

	p.doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		tag := dom.TagName(n)
		if tag == "html" || tag == "body" {
			return
		}
		match := sel.AttrOr("class", "") + " " + sel.AttrOr("id", "")
		if rxUnlikely.MatchString(match) && !rxMaybeCandidate.MatchString(match) {
			sel.Remove()
		}
	})

	var comments []*html.Node
	for n := range dom.Walk(p.root) {
		if n.Type == html.CommentNode {
			comments = append(comments, n)
		}
	}
	for _, c := range comments {
		dom.DetachNode(c)
	}
}

// postProcess cleans the winning subtree in place: boilerplate sweep,
// link-density pruning, attribute hygiene, wrapper unwrapping, URL
// resolution, and empty-element removal.
func (p *pass) postProcess(winner *html.Node) {
	p.stripBoilerplate(winner)
	p.cleanConditionally(winner)
	cleanAttributes(winner)
	unwrapPresentational(winner)
	p.fixURLs(winner)
	dropEmpty(winner)
	demoteH1(winner)
}

func (p *pass) stripBoilerplate(winner *html.Node) {
	var doomed []*html.Node
	for el := range dom.Elements(winner) {
		if el == winner {
			continue
		}
		match := dom.ClassName(el) + " " + dom.ID(el)
		if rxUnlikely.MatchString(match) && !rxMaybeCandidate.MatchString(match) {
			doomed = append(doomed, el)
		}
	}
	for _, el := range doomed {
		dom.DetachNode(el)
	}
}

// cleanConditionally prunes container descendants dominated by links.
// Low-weight containers go at 20% link text, and even positively weighted
// ones go past 50%.
func (p *pass) cleanConditionally(winner *html.Node) {
	sc := p.opts.Scoring
	var doomed []*html.Node
	for el := range dom.ElementsByTag(winner, "div", "table", "ul", "ol") {
		if el == winner {
			continue
		}
		weight := sc.classWeight(el)
		density := linkDensity(el)
		if (weight < sc.attr && density > 0.2) || (weight >= sc.attr && density > 0.5) {
			doomed = append(doomed, el)
		}
	}
	for _, el := range doomed {
		dom.DetachNode(el)
	}
}

func cleanAttributes(winner *html.Node) {
	for el := range dom.Elements(winner) {
		kept := el.Attr[:0]
		for _, attr := range el.Attr {
			key := strings.ToLower(attr.Key)
			if key == "style" || strings.HasPrefix(key, "on") || presentationalAttrs[key] {
				continue
			}
			kept = append(kept, attr)
		}
		el.Attr = kept
	}
}

// unwrapPresentational hoists content out of wrappers with no semantic
// value: font and center tags, and div shells holding exactly one element
// and no text of their own.
func unwrapPresentational(winner *html.Node) {
	var wrappers []*html.Node
	for el := range dom.Elements(winner) {
		if el == winner {
			continue
		}
		switch dom.TagName(el) {
		case "font", "center":
			wrappers = append(wrappers, el)
		case "div":
			if isShell(el) {
				wrappers = append(wrappers, el)
			}
		}
	}
	for _, el := range wrappers {
		dom.UnwrapNode(el)
	}
}

func isShell(n *html.Node) bool {
	elements := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			elements++
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		}
	}
	return elements == 1
}

func dropEmpty(winner *html.Node) {
	var doomed []*html.Node
	for el := range dom.ElementsByTag(winner, "p", "div", "section") {
		if el == winner {
			continue
		}
		if dom.InnerText(el) != "" {
			continue
		}
		if dom.FirstByTag(el, "img") == nil && dom.FirstByTag(el, "br") == nil && dom.FirstByTag(el, "hr") == nil {
			doomed = append(doomed, el)
		}
	}
	for _, el := range doomed {
		dom.DetachNode(el)
	}
}

// demoteH1 rewrites h1 headings to h2 so extracted fragments never
// compete with the host page's own top-level heading.
func demoteH1(winner *html.Node) {
	for h1 := range dom.ElementsByTag(winner, "h1") {
		h1.Data = "h2"
		h1.DataAtom = atom.H2
	}
}
