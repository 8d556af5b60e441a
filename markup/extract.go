package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// TextNode is a text leaf of the parsed document.
type TextNode struct {
	Content string
	// ParentTag is tag name of the enclosing element, empty when text sits
	// directly under the document.
	ParentTag string
	// ParentClasses are classes of the enclosing element in document order.
	ParentClasses []string
	HasParent     bool
	// Comment is set for comment content, which is treated as text.
	Comment bool
}

// ClassName returns parent classes joined by single spaces.
func (n TextNode) ClassName() string {
	return strings.Join(n.ParentClasses, " ")
}

// Extract parses markup and returns all text and comment nodes in document
// order, whitespace-only ones included. Doctype is not returned.
//
// Stray text inside table structure is moved out of the table by the parser,
// so it is reported under the table's parent element.
func Extract(r io.Reader) ([]TextNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse markup: %w", err)
	}

	var nodes []TextNode
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			nodes = append(nodes, newTextNode(n))
		case html.CommentNode:
			tn := newTextNode(n)
			tn.Comment = true
			nodes = append(nodes, tn)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return nodes, nil
}

func newTextNode(n *html.Node) TextNode {
	tn := TextNode{Content: n.Data}

	p := n.Parent
	if p == nil || p.Type != html.ElementNode {
		return tn
	}
	tn.HasParent = true
	tn.ParentTag = p.Data
	for _, a := range p.Attr {
		if a.Namespace == "" && a.Key == "class" {
			if classes := strings.Fields(a.Val); len(classes) > 0 {
				tn.ParentClasses = classes
			}
			break
		}
	}
	return tn
}
