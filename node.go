package apicheck

import "strings"

// NodeType identifies the kind of a Node.
type NodeType int

// Node types.
const (
	ElementNode NodeType = iota
	TextNode
	DocumentNode
)

// Node is a generic parsed markup node. A node exclusively owns its children.
//
// A node is either a text leaf (Text set and no children) or a container.
// Queries treat a nil Children slice as empty, so trees built from struct
// literals behave like parsed ones.
type Node struct {
	Type     NodeType
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Children []*Node
	Text     string
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool {
	return n.Type == TextNode || (len(n.Children) == 0 && n.Text != "")
}

// NewElement returns an element node. Classes are taken from the "class"
// attribute, which is also kept in Attrs.
func NewElement(tag string, attrs map[string]string, children ...*Node) *Node {
	n := &Node{
		Type:     ElementNode,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
	if class, ok := attrs["class"]; ok {
		n.Classes = strings.Fields(class)
	}
	return n
}

// NewText returns a text leaf.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// NewDocument returns a document root holding the given children.
func NewDocument(children ...*Node) *Node {
	return &Node{Type: DocumentNode, Children: children}
}

// HasClass reports whether the node carries the style class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Attr returns the value of the attribute key.
func (n *Node) Attr(key string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[key]
	return v, ok
}

// FindByAttr returns the first direct child whose attribute key equals value.
// Returns ENOTFOUND if no child matches.
func FindByAttr(node *Node, key, value string) (*Node, error) {
	for _, child := range node.Children {
		if v, ok := child.Attr(key); ok && v == value {
			return child, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "element not found: no child with %s=%q", key, value)
}

// FindByTag returns the first direct element child with the given tag.
// Returns ENOTFOUND if no child matches.
func FindByTag(node *Node, tag string) (*Node, error) {
	for _, child := range node.Children {
		if child.Type == ElementNode && child.Tag == tag {
			return child, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "element not found: no <%s> child", tag)
}

// FindFirstWithClass returns the first direct child carrying class.
// Returns ENOTFOUND if no child matches.
func FindFirstWithClass(node *Node, class string) (*Node, error) {
	for _, child := range node.Children {
		if child.HasClass(class) {
			return child, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "element not found: no child with class %q", class)
}

// FindDeepWithClass searches the subtree depth-first, starting with node
// itself, and returns the first node carrying class or nil.
func FindDeepWithClass(node *Node, class string) *Node {
	if node.HasClass(class) {
		return node
	}
	for _, child := range node.Children {
		if found := FindDeepWithClass(child, class); found != nil {
			return found
		}
	}
	return nil
}

// FindDeepByAttr searches the subtree depth-first, starting with node itself,
// and returns the first node whose attribute key equals value or nil.
func FindDeepByAttr(node *Node, key, value string) *Node {
	if v, ok := node.Attr(key); ok && v == value {
		return node
	}
	for _, child := range node.Children {
		if found := FindDeepByAttr(child, key, value); found != nil {
			return found
		}
	}
	return nil
}

// FindAllWithClass returns every direct child carrying class, in document order.
func FindAllWithClass(node *Node, class string) []*Node {
	var nodes []*Node
	for _, child := range node.Children {
		if child.HasClass(class) {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

// ExtractText concatenates the text leaves of the subtree in document order,
// skipping any subtree carrying ignoreClass. Each leaf is padded with a space
// on both sides so tokens split across sibling nodes stay separated; run the
// result through Normalize to restore signature spacing.
func ExtractText(node *Node, ignoreClass string) string {
	var b strings.Builder
	extractText(&b, node, ignoreClass)
	return b.String()
}

func extractText(b *strings.Builder, node *Node, ignoreClass string) {
	if ignoreClass != "" && node.HasClass(ignoreClass) {
		return
	}
	if node.IsText() {
		b.WriteString(" ")
		b.WriteString(node.Text)
		b.WriteString(" ")
		return
	}
	for _, child := range node.Children {
		extractText(b, child, ignoreClass)
	}
}
