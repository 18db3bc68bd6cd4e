// Package htmlutil exposes a small read-only query surface over a parsed HTML
// tree so that scrapers do not depend on the parser's own types.
package htmlutil

import (
	"bytes"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Node is a single element in a parsed document.
type Node interface {
	// FindClass returns the first descendant carrying the given class.
	FindClass(class string) (Node, bool)
	// FindTag returns the first descendant with the given tag name.
	FindTag(tag string) (Node, bool)
	// Parent returns the enclosing element, if any.
	Parent() (Node, bool)
	Attr(name string) (string, bool)
	// Text returns the concatenated text of the node and its descendants, untrimmed.
	Text() string
}

// Document is a parsed page.
type Document interface {
	// FindAllClass returns every element carrying class, in document order.
	FindAllClass(class string) []Node
}

// ParseDocument builds a tree from r. The underlying parser recovers from
// malformed markup the way browsers do, so errors only come from reading r.
func ParseDocument(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return document{doc: doc}, nil
}

type document struct {
	doc *goquery.Document
}

func (d document) FindAllClass(class string) []Node {
	var nodes []Node
	d.doc.FindMatcher(classMatcher(class)).Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, element{sel: sel})
	})
	return nodes
}

type element struct {
	sel *goquery.Selection
}

func (e element) first(sel *goquery.Selection) (Node, bool) {
	if sel.Length() == 0 {
		return nil, false
	}
	return element{sel: sel.First()}, true
}

func (e element) FindClass(class string) (Node, bool) {
	return e.first(e.sel.FindMatcher(classMatcher(class)))
}

func (e element) FindTag(tag string) (Node, bool) {
	return e.first(e.sel.FindMatcher(tagMatcher(tag)))
}

func (e element) Parent() (Node, bool) {
	return e.first(e.sel.Parent())
}

func (e element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

func (e element) Text() string {
	if len(e.sel.Nodes) == 0 {
		return ""
	}
	return GetText(e.sel.Nodes[0])
}

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}
