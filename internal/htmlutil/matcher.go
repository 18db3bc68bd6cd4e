package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// classMatcher and tagMatcher implement goquery.Matcher without going through
// a CSS selector, so class names are never interpreted as selector syntax.

type classMatcher string

func (m classMatcher) Match(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(a.Val) {
			if class == string(m) {
				return true
			}
		}
	}
	return false
}

func (m classMatcher) MatchAll(n *html.Node) []*html.Node {
	return matchAll(n, m.Match)
}

func (m classMatcher) Filter(nodes []*html.Node) []*html.Node {
	return filter(nodes, m.Match)
}

type tagMatcher string

func (m tagMatcher) Match(n *html.Node) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, string(m))
}

func (m tagMatcher) MatchAll(n *html.Node) []*html.Node {
	return matchAll(n, m.Match)
}

func (m tagMatcher) Filter(nodes []*html.Node) []*html.Node {
	return filter(nodes, m.Match)
}

// matchAll returns n and its descendants that match, in document order.
func matchAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func filter(nodes []*html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if match(n) {
			out = append(out, n)
		}
	}
	return out
}
