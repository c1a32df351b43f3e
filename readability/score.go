package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/distill/dom"
	"golang.org/x/net/html"
)

// Scoring is the keyword weight table consulted while rating candidate
// blocks: class/id keywords that raise or lower an element's weight, and
// seed scores by tag name. Build one with NewScoring; it is immutable
// from then on and safe for concurrent use.
type Scoring struct {
	positive *regexp.Regexp
	negative *regexp.Regexp
	attr     float64
	tags     map[string]float64
}

// NewScoring compiles a keyword weight table. Keywords match
// case-insensitively as substrings of class and id attribute values;
// each matching list moves the element's weight by attr (positive list)
// or -attr (negative list). tags seeds scores by element name and may
// be nil.
func NewScoring(positive, negative []string, attr float64, tags map[string]float64) *Scoring {
	s := &Scoring{attr: attr, tags: make(map[string]float64, len(tags))}
	if len(positive) > 0 {
		s.positive = compileKeywords(positive)
	}
	if len(negative) > 0 {
		s.negative = compileKeywords(negative)
	}
	for tag, weight := range tags {
		s.tags[tag] = weight
	}
	return s
}

func compileKeywords(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, keyword := range keywords {
		quoted[i] = regexp.QuoteMeta(keyword)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))
}

// defaultScoring is built once at startup and shared by every extractor
// that does not supply its own table.
var defaultScoring = NewScoring(
	[]string{
		"article", "body", "content", "entry", "hentry", "h-entry",
		"main", "page", "pagination", "post", "text", "blog", "story",
	},
	[]string{
		"hidden", "banner", "combx", "comment", "com-", "contact",
		"foot", "footer", "footnote", "gdpr", "masthead", "media",
		"meta", "outbrain", "promo", "related", "scroll", "share",
		"shoutbox", "sidebar", "skyscraper", "sponsor", "shopping",
		"tags", "tool", "widget",
	},
	25,
	map[string]float64{
		"article": 10, "section": 8, "div": 5,
		"pre": 3, "blockquote": 3, "td": 3,
		"form": -3, "ol": -3, "dl": -3, "dd": -3, "dt": -3, "li": -3, "address": -3,
		"th": -5, "h1": -5, "h2": -5, "h3": -5, "h4": -5, "h5": -5, "h6": -5,
	},
)

// DefaultScoring returns the stock weight table. The returned value is
// shared; treat it as read-only.
func DefaultScoring() *Scoring { return defaultScoring }

// classWeight scores an element's class and id attributes against the
// keyword lists, each attribute moving the weight by up to ±attr.
func (s *Scoring) classWeight(n *html.Node) float64 {
	return s.attrWeight(dom.ClassName(n)) + s.attrWeight(dom.ID(n))
}

func (s *Scoring) attrWeight(value string) float64 {
	if value == "" {
		return 0
	}
	var weight float64
	if s.negative != nil && s.negative.MatchString(value) {
		weight -= s.attr
	}
	if s.positive != nil && s.positive.MatchString(value) {
		weight += s.attr
	}
	return weight
}

// tagWeight seeds an element's score by how likely its tag is to hold
// article content.
func (s *Scoring) tagWeight(n *html.Node) float64 {
	return s.tags[dom.TagName(n)]
}

// candidateTags are the block elements that participate in scoring.
var candidateTags = map[string]bool{
	"p": true, "div": true, "article": true, "section": true,
	"td": true, "pre": true, "blockquote": true,
}

// inlineTags bound a block's direct text: text gathering descends through
// these but stops at any other element.
var inlineTags = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true,
	"br": true, "cite": true, "code": true, "data": true, "dfn": true,
	"em": true, "font": true, "i": true, "kbd": true, "mark": true,
	"q": true, "s": true, "samp": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "time": true, "u": true,
	"var": true, "wbr": true,
}

// directText gathers the text that belongs to n itself: text nodes
// reached without crossing into another block-level element, normalized.
func directText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(el *html.Node) {
		for c := el.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				if inlineTags[dom.TagName(c)] {
					walk(c)
				}
			}
		}
	}
	walk(n)
	return dom.NormalizeText(sb.String())
}

// linkDensity is the share of an element's text that sits inside links.
func linkDensity(n *html.Node) float64 {
	total := utf8.RuneCountInString(dom.InnerText(n))
	if total == 0 {
		return 0
	}
	links := 0
	for a := range dom.ElementsByTag(n, "a") {
		links += utf8.RuneCountInString(dom.InnerText(a))
	}
	return float64(links) / float64(total)
}

func elementParent(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// scoreCandidates builds the scoring context: every block with enough
// direct text contributes to its parent in full and to its grandparent at
// half, on top of each ancestor's own tag and class/id weights. The map
// is call-local and discarded after selection.
func (p *pass) scoreCandidates() map[*html.Node]float64 {
	sc := p.opts.Scoring
	scores := make(map[*html.Node]float64)
	ensure := func(n *html.Node) {
		if _, ok := scores[n]; !ok {
			scores[n] = sc.tagWeight(n) + sc.classWeight(n)
		}
	}

	for n := range dom.Walk(p.root) {
		if n.Type != html.ElementNode || !candidateTags[dom.TagName(n)] {
			continue
		}
		text := directText(n)
		if utf8.RuneCountInString(text) < p.opts.MinTextLen {
			continue
		}

		contribution := 1.0
		contribution += float64(strings.Count(text, ",") + strings.Count(text, "，"))
		contribution += math.Min(math.Floor(float64(utf8.RuneCountInString(text))/100), 3)

		parent := elementParent(n)
		if parent == nil {
			continue
		}
		ensure(parent)
		scores[parent] += contribution

		if grandparent := elementParent(parent); grandparent != nil {
			ensure(grandparent)
			scores[grandparent] += contribution / 2
		}
	}
	return scores
}

// selectContent picks the scored element with the highest final score,
// where final = accumulated × (1 − link density). The walk is in document
// order and the comparison strictly greater, so ties go to the earliest
// element. Below MinScore the choice degrades to the largest text-bearing
// block, then <body>; nil means the document holds no content at all.
func (p *pass) selectContent() *html.Node {
	scores := p.scoreCandidates()

	var winner *html.Node
	var best float64
	for n := range dom.Walk(p.root) {
		score, ok := scores[n]
		if !ok {
			continue
		}
		final := score * (1 - linkDensity(n))
		if winner == nil || final > best {
			winner, best = n, final
		}
	}
	if winner != nil && best >= p.opts.MinScore {
		return winner
	}

	var fallback *html.Node
	var bestLen int
	for n := range dom.Walk(p.root) {
		if n.Type != html.ElementNode || !candidateTags[dom.TagName(n)] {
			continue
		}
		if l := utf8.RuneCountInString(dom.InnerText(n)); l > bestLen {
			fallback, bestLen = n, l
		}
	}
	if fallback != nil {
		return fallback
	}
	if body := dom.FirstByTag(p.root, "body"); body != nil && dom.InnerText(body) != "" {
		return body
	}
	return nil
}
