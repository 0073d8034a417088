package rustdoc

import (
	"fmt"

	"github.com/fwojciec/apicheck"
)

// StepKind selects how a Step matches a child node.
type StepKind int

// Step kinds.
const (
	StepTag StepKind = iota
	StepClass
	StepID
)

func (k StepKind) String() string {
	switch k {
	case StepTag:
		return "tag"
	case StepClass:
		return "class"
	case StepID:
		return "id"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is one hop of an anchor chain: the first direct child matching Kind
// and Value.
type Step struct {
	Kind  StepKind
	Value string
}

func (s Step) String() string {
	return fmt.Sprintf("%s %q", s.Kind, s.Value)
}

// DefaultAnchors leads from the document root to rustdoc's main content
// section.
var DefaultAnchors = []Step{
	{StepTag, "html"},
	{StepTag, "body"},
	{StepTag, "main"},
	{StepClass, "width-limiter"},
	{StepID, "main-content"},
}

// Navigate applies steps left to right starting at root and returns the node
// reached. Returns ENOTFOUND naming the first step that matched nothing.
func Navigate(root *apicheck.Node, steps []Step) (*apicheck.Node, error) {
	node := root
	for i, step := range steps {
		next, err := step.find(node)
		if err != nil {
			if apicheck.ErrorCode(err) != apicheck.ENOTFOUND {
				return nil, err
			}
			return nil, apicheck.Errorf(apicheck.ENOTFOUND, "element not found: anchor %d/%d (%s) missing; the page layout does not match", i+1, len(steps), step)
		}
		node = next
	}
	return node, nil
}

func (s Step) find(node *apicheck.Node) (*apicheck.Node, error) {
	switch s.Kind {
	case StepTag:
		return apicheck.FindByTag(node, s.Value)
	case StepClass:
		return apicheck.FindFirstWithClass(node, s.Value)
	case StepID:
		return apicheck.FindByAttr(node, "id", s.Value)
	default:
		return nil, apicheck.Errorf(apicheck.EINVALID, "unknown anchor step kind %d", int(s.Kind))
	}
}
