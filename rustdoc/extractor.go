// Package rustdoc extracts API surfaces from pages rendered by rustdoc.
//
// The extractor relies on rustdoc's page layout: an anchor chain leading to
// the main content section, the "fqn"/"in-band" title, the "item-decl"
// declaration block and "implementors-toggle" impl blocks. A page that does
// not follow this layout fails with ENOTFOUND rather than yielding a partial
// surface.
package rustdoc

import (
	"strings"
	"unicode"

	"github.com/fwojciec/apicheck"
)

// Ensure Extractor implements apicheck.Extractor at compile time.
var _ apicheck.Extractor = (*Extractor)(nil)

// Class and id names of the rustdoc layout.
const (
	ClassFQN            = "fqn"
	ClassInBand         = "in-band"
	ClassMainHeading    = "main-heading"
	ClassBreadcrumbs    = "rustdoc-breadcrumbs"
	ClassNotableTraits  = "notable-traits"
	ClassItemDecl       = "item-decl"
	ClassImplementors   = "implementors-toggle"
	ClassImpl           = "impl"
	ClassImplItems      = "impl-items"
	ClassCodeHeader     = "code-header"
	IDImplementations   = "implementations-list"
	IDTraitImplsList    = "trait-implementations-list"
	DefaultKind         = "struct"
	defaultIgnoredClass = ClassNotableTraits
)

// Extractor builds apicheck.Surface values from parsed rustdoc pages.
type Extractor struct {
	kind    string
	anchors []Step
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithKind sets the documented item kind, e.g. "struct" or "enum".
// It is the title label stripped from the name and the class of the
// declaration block. Defaults to DefaultKind.
func WithKind(kind string) Option {
	return func(e *Extractor) {
		e.kind = kind
	}
}

// WithAnchors replaces the anchor chain leading to the main content section.
// Defaults to DefaultAnchors.
func WithAnchors(steps ...Step) Option {
	return func(e *Extractor) {
		e.anchors = steps
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		kind:    DefaultKind,
		anchors: DefaultAnchors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the API surface documented by doc. The result is built
// fresh on every call and shares nothing with doc.
func (e *Extractor) Extract(doc *apicheck.Node) (*apicheck.Surface, error) {
	main, err := Navigate(doc, e.anchors)
	if err != nil {
		return nil, err
	}

	name, err := e.name(main)
	if err != nil {
		return nil, err
	}

	decl, err := e.declaration(main)
	if err != nil {
		return nil, err
	}

	implScope := main
	if list := apicheck.FindDeepByAttr(main, "id", IDImplementations); list != nil {
		implScope = list
	}
	impls, err := extractImpls(implScope)
	if err != nil {
		return nil, err
	}

	var traitImpls []apicheck.Impl
	if list := apicheck.FindDeepByAttr(main, "id", IDTraitImplsList); list != nil {
		if traitImpls, err = extractImpls(list); err != nil {
			return nil, err
		}
	}

	return &apicheck.Surface{
		Name:                 name,
		Declaration:          decl,
		Implementations:      impls,
		TraitImplementations: traitImpls,
	}, nil
}

// name returns the fully qualified path from the page title with the kind
// label removed. Older rustdoc wraps the title in ".fqn > .in-band"; newer
// releases dropped "in-band" and later "fqn", leaving ".main-heading > h1"
// with the parent path in a separate breadcrumbs element.
func (e *Extractor) name(main *apicheck.Node) (string, error) {
	var text, parent string
	if fqn := apicheck.FindDeepWithClass(main, ClassFQN); fqn != nil {
		if inBand, err := apicheck.FindFirstWithClass(fqn, ClassInBand); err == nil {
			text = apicheck.ExtractText(inBand, defaultIgnoredClass)
		} else {
			text = headingText(fqn)
		}
	} else if heading := apicheck.FindDeepWithClass(main, ClassMainHeading); heading != nil {
		h1, err := apicheck.FindByTag(heading, "h1")
		if err != nil {
			return "", err
		}
		text = headingText(h1)
		if crumbs, err := apicheck.FindFirstWithClass(heading, ClassBreadcrumbs); err == nil {
			parent = stripSpace(apicheck.ExtractText(crumbs, defaultIgnoredClass))
		}
	} else {
		return "", apicheck.Errorf(apicheck.ENOTFOUND, "element not found: no %q title", ClassFQN)
	}

	name := stripSpace(text)
	if len(name) < len(e.kind) || !strings.EqualFold(name[:len(e.kind)], e.kind) {
		return "", apicheck.Errorf(apicheck.ENOTFOUND, "title %q does not start with %q", name, e.kind)
	}
	name = name[len(e.kind):]
	if parent != "" {
		name = parent + apicheck.PathSeparator + name
	}
	return name, nil
}

// headingText extracts title text without the "copy item path" button.
func headingText(h *apicheck.Node) string {
	var b strings.Builder
	for _, child := range h.Children {
		if child.Tag == "button" || child.HasClass("out-of-band") {
			continue
		}
		b.WriteString(apicheck.ExtractText(child, defaultIgnoredClass))
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// declaration returns the normalized declaration. Older rustdoc nests a
// "pre.rust.<kind>" block inside a ".item-decl" wrapper; newer releases
// put the "item-decl" class on the pre block itself.
func (e *Extractor) declaration(main *apicheck.Node) (string, error) {
	itemDecl := apicheck.FindDeepWithClass(main, ClassItemDecl)
	if itemDecl == nil {
		return "", apicheck.Errorf(apicheck.ENOTFOUND, "element not found: no %q block", ClassItemDecl)
	}

	decl, err := apicheck.FindFirstWithClass(itemDecl, e.kind)
	if err != nil {
		if itemDecl.Tag != "pre" {
			return "", err
		}
		decl = itemDecl
	}
	return apicheck.Normalize(apicheck.ExtractText(decl, defaultIgnoredClass)), nil
}

// extractImpls returns the impl blocks found among the direct children of
// scope, in document order.
func extractImpls(scope *apicheck.Node) ([]apicheck.Impl, error) {
	toggles := apicheck.FindAllWithClass(scope, ClassImplementors)
	impls := make([]apicheck.Impl, 0, len(toggles))
	for _, toggle := range toggles {
		header, err := implHeader(toggle)
		if err != nil {
			return nil, err
		}
		impls = append(impls, apicheck.Impl{
			Header:  header,
			Methods: implMethods(toggle),
		})
	}
	return impls, nil
}

// implHeader follows summary > .impl > .code-header.
func implHeader(toggle *apicheck.Node) (string, error) {
	summary, err := apicheck.FindByTag(toggle, "summary")
	if err != nil {
		return "", err
	}
	impl, err := apicheck.FindFirstWithClass(summary, ClassImpl)
	if err != nil {
		return "", err
	}
	header, err := apicheck.FindFirstWithClass(impl, ClassCodeHeader)
	if err != nil {
		return "", err
	}
	return apicheck.Normalize(apicheck.ExtractText(header, defaultIgnoredClass)), nil
}

// implMethods returns the signature of every item under .impl-items that has
// a code header. Impl blocks without items yield no methods.
func implMethods(toggle *apicheck.Node) []string {
	items, err := apicheck.FindFirstWithClass(toggle, ClassImplItems)
	if err != nil {
		return []string{}
	}
	methods := make([]string, 0, len(items.Children))
	for _, item := range items.Children {
		if header := apicheck.FindDeepWithClass(item, ClassCodeHeader); header != nil {
			methods = append(methods, apicheck.Normalize(apicheck.ExtractText(header, defaultIgnoredClass)))
		}
	}
	return methods
}
