// Package html provides an implementation of apicheck.Parser backed by
// golang.org/x/net/html. It converts the parsed DOM into the generic
// apicheck.Node tree queried by the extractor.
package html

import (
	"strings"

	"github.com/fwojciec/apicheck"
	xhtml "golang.org/x/net/html"
)

// Ensure Parser implements apicheck.Parser at compile time.
var _ apicheck.Parser = (*Parser)(nil)

// Parser parses HTML markup into apicheck.Node trees.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses markup and returns the document node. Comments and doctype
// declarations are dropped; element and text nodes are kept in order.
func (p *Parser) Parse(markup string) (*apicheck.Node, error) {
	doc, err := xhtml.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, apicheck.Errorf(apicheck.EINVALID, "failed to parse HTML: %v", err)
	}
	return convert(doc), nil
}

func convert(n *xhtml.Node) *apicheck.Node {
	switch n.Type {
	case xhtml.DocumentNode:
		return apicheck.NewDocument(convertChildren(n)...)
	case xhtml.ElementNode:
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			attrs[a.Key] = a.Val
		}
		return apicheck.NewElement(n.Data, attrs, convertChildren(n)...)
	case xhtml.TextNode:
		return apicheck.NewText(n.Data)
	default:
		return nil
	}
}

func convertChildren(n *xhtml.Node) []*apicheck.Node {
	var children []*apicheck.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			children = append(children, child)
		}
	}
	return children
}
