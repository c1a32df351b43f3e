package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TagName returns the lowercased element name, or "" for non-elements.
func TagName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

// GetAttribute returns the value of the named attribute. Names match
// case-insensitively; the first occurrence wins, as in HTML5 parsing.
func GetAttribute(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttribute reports whether the named attribute is present.
func HasAttribute(n *html.Node, name string) bool {
	_, ok := GetAttribute(n, name)
	return ok
}

// SetAttribute sets the named attribute. When the name is already present
// the existing value is replaced: the last write wins.
func SetAttribute(n *html.Node, name, value string) {
	for i, attr := range n.Attr {
		if strings.EqualFold(attr.Key, name) {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: strings.ToLower(name), Val: value})
}

// RemoveAttribute deletes every attribute matching name.
func RemoveAttribute(n *html.Node, name string) {
	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		if !strings.EqualFold(attr.Key, name) {
			kept = append(kept, attr)
		}
	}
	n.Attr = kept
}

// ID returns the element's id attribute, or "".
func ID(n *html.Node) string {
	id, _ := GetAttribute(n, "id")
	return id
}

// ClassName returns the element's class attribute, or "".
func ClassName(n *html.Node) string {
	class, _ := GetAttribute(n, "class")
	return class
}

// TextContent returns the concatenated text of n and its descendants in
// document order.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
		}
	}
	return sb.String()
}

// InnerText returns the text of n with whitespace runs collapsed to
// single spaces and the ends trimmed.
func InnerText(n *html.Node) string {
	return NormalizeText(TextContent(n))
}

// NormalizeText collapses whitespace runs into single spaces and trims.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DetachNode removes n from its parent. A parentless node is left alone.
func DetachNode(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// ReplaceNode swaps newNode into oldNode's position in the tree. newNode
// is detached from any current parent first.
func ReplaceNode(oldNode, newNode *html.Node) {
	if oldNode.Parent == nil {
		return
	}
	DetachNode(newNode)
	oldNode.Parent.InsertBefore(newNode, oldNode)
	oldNode.Parent.RemoveChild(oldNode)
}

// UnwrapNode replaces n with its own children, preserving their order.
func UnwrapNode(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		n.RemoveChild(child)
		parent.InsertBefore(child, n)
		child = next
	}
	parent.RemoveChild(n)
}

// Clone returns a deep copy of n. The copy has no parent or siblings and
// shares nothing with the source: mutating one tree never affects the
// other.
func Clone(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(n.Attr))
		copy(clone.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		clone.AppendChild(Clone(child))
	}
	return clone
}

// Children returns the element children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// CreateElement returns a detached element node with the given tag.
func CreateElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// CreateTextNode returns a detached text node.
func CreateTextNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
