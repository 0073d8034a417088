package apicheck

import "strings"

// Impl is one capability group of a documented type: an inherent impl block
// or a trait impl block, identified by its header.
type Impl struct {
	Header  string   `json:"header"`
	Methods []string `json:"methods"`
}

// Surface is the API model extracted from one rustdoc page.
type Surface struct {
	// Name is the fully qualified path of the item, e.g. "std::vec::Vec".
	Name string `json:"name"`

	// Declaration is the normalized one-line declaration of the item.
	Declaration string `json:"declaration"`

	// Implementations are the inherent impl blocks in document order.
	Implementations []Impl `json:"implementations"`

	// TraitImplementations are the trait impl blocks in document order.
	TraitImplementations []Impl `json:"traitImplementations"`
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	return &Surface{
		Name:                 s.Name,
		Declaration:          s.Declaration,
		Implementations:      cloneImpls(s.Implementations),
		TraitImplementations: cloneImpls(s.TraitImplementations),
	}
}

func cloneImpls(impls []Impl) []Impl {
	if impls == nil {
		return nil
	}
	out := make([]Impl, len(impls))
	for i, impl := range impls {
		out[i] = Impl{
			Header:  impl.Header,
			Methods: append([]string(nil), impl.Methods...),
		}
	}
	return out
}

// findImpl returns the first impl whose header equals header.
func findImpl(impls []Impl, header string) (Impl, bool) {
	for _, impl := range impls {
		if impl.Header == header {
			return impl, true
		}
	}
	return Impl{}, false
}

// Parser builds a Node tree from raw markup.
type Parser interface {
	// Parse returns the document root for markup.
	// Returns EINVALID if the markup cannot be parsed.
	Parse(markup string) (*Node, error)
}

// Extractor builds an API surface from a parsed documentation page.
type Extractor interface {
	// Extract returns the surface documented by doc.
	// Returns ENOTFOUND when an expected structural anchor is missing.
	Extract(doc *Node) (*Surface, error)
}

// Generator describes the tool that rendered a documentation page.
type Generator struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Channel string `json:"channel,omitempty"`

	// Crate is the crate the page belongs to, when the generator records it.
	Crate string `json:"crate,omitempty"`
}

// GeneratorRustdoc is the generator name of rustdoc output.
const GeneratorRustdoc = "rustdoc"

// IsRustdoc reports whether the page was rendered by rustdoc.
func (g Generator) IsRustdoc() bool {
	return g.Name == GeneratorRustdoc
}

// String formats g as "rustdoc 1.80.0 (stable)", omitting unknown parts.
func (g Generator) String() string {
	s := g.Name
	if s == "" {
		s = "unknown"
	}
	if g.Version != "" {
		s += " " + g.Version
	}
	if g.Channel != "" {
		s += " (" + g.Channel + ")"
	}
	return s
}

// OwnedBy reports whether a page rendered for g belongs to crate. Rustdoc
// records crate names with hyphens replaced by underscores. Pages that do
// not record a crate belong to any crate.
func (g Generator) OwnedBy(crate string) bool {
	if g.Crate == "" || crate == "" {
		return true
	}
	return g.Crate == strings.ReplaceAll(crate, "-", "_")
}

// Detector identifies the generator of a documentation page.
type Detector interface {
	// Detect analyzes markup and returns its generator.
	// Returns a zero Generator if it cannot be determined.
	Detect(markup string) Generator
}
