package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/distill/dom"
	"golang.org/x/net/html"
)

// fixURLs rewrites link and image targets in the content. javascript:
// links are replaced by their text since they cannot work in extracted
// output; images without a source are dropped; everything else resolves
// against the base URL when one is available.
func (p *pass) fixURLs(winner *html.Node) {
	var scripted []*html.Node
	for a := range dom.ElementsByTag(winner, "a") {
		href, ok := dom.GetAttribute(a, "href")
		if !ok {
			continue
		}
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "javascript:") {
			scripted = append(scripted, a)
			continue
		}
		if p.base != nil {
			dom.SetAttribute(a, "href", resolveURL(href, p.base))
		}
	}
	for _, a := range scripted {
		dom.ReplaceNode(a, dom.CreateTextNode(dom.TextContent(a)))
	}

	var broken []*html.Node
	for img := range dom.ElementsByTag(winner, "img") {
		src, _ := dom.GetAttribute(img, "src")
		if strings.TrimSpace(src) == "" {
			broken = append(broken, img)
			continue
		}
		if p.base != nil {
			dom.SetAttribute(img, "src", resolveURL(src, p.base))
		}
	}
	for _, img := range broken {
		dom.DetachNode(img)
	}
}

// resolveURL resolves ref against base following RFC 3986 reference
// resolution. Fragment-only references and already-absolute URLs come
// back unchanged, as does anything that fails to parse.
func resolveURL(ref string, base *url.URL) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || base == nil {
		return ref
	}
	if strings.HasPrefix(ref, "#") {
		return ref
	}
	if abs, err := url.ParseRequestURI(ref); err == nil && abs.Scheme != "" && abs.Hostname() != "" {
		return ref
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}
