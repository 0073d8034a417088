package apicheck

// Info is the checker configuration for one local crate.
type Info struct {
	// Name is the local crate name; local docs live under <doc-root>/<Name>.
	Name    string   `json:"name" yaml:"name"`
	Sources []Source `json:"sources" yaml:"sources"`
}

// Source is one checkable item: a documented type with a reference page, a
// local page and the overrides reconciling the two.
type Source struct {
	Name      string     `json:"name" yaml:"name"`
	Docs      Docs       `json:"docs" yaml:"docs"`
	Overrides []Override `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Docs holds the two document locations of a source.
type Docs struct {
	// Source is the reference page URL.
	Source string `json:"source" yaml:"source"`

	// Local is the local page path relative to the crate's doc directory.
	Local string `json:"local" yaml:"local"`
}

// Validate returns an error if the info contains invalid fields.
func (i *Info) Validate() error {
	if i.Name == "" {
		return Errorf(EINVALID, "info crate name required")
	}
	seen := make(map[string]bool, len(i.Sources))
	for _, s := range i.Sources {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.Name] {
			return Errorf(EINVALID, "duplicate source %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// FindSource returns the source with the given name.
// Returns ENOTFOUND if no source matches.
func (i *Info) FindSource(name string) (*Source, error) {
	for idx := range i.Sources {
		if i.Sources[idx].Name == name {
			return &i.Sources[idx], nil
		}
	}
	return nil, Errorf(ENOTFOUND, "source %q not found", name)
}

// SourceNames returns the configured source names in configuration order.
func (i *Info) SourceNames() []string {
	names := make([]string, len(i.Sources))
	for idx, s := range i.Sources {
		names[idx] = s.Name
	}
	return names
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.Docs.Source == "" {
		return Errorf(EINVALID, "source %q reference location required", s.Name)
	}
	if s.Docs.Local == "" {
		return Errorf(EINVALID, "source %q local location required", s.Name)
	}
	for idx := range s.Overrides {
		if err := s.Overrides[idx].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Location returns the document location of the given kind.
func (s *Source) Location(kind SourceKind) string {
	if kind == SourceLocal {
		return s.Docs.Local
	}
	return s.Docs.Source
}

// SourceKind selects which of a source's two documents is used.
type SourceKind string

// Source kinds.
const (
	SourceReference SourceKind = "reference"
	SourceLocal     SourceKind = "local"
)

// ParseSourceKind parses a source kind. "std" is accepted as an alias of
// "reference". Returns EINVALID for anything else.
func ParseSourceKind(s string) (SourceKind, error) {
	switch s {
	case "reference", "std":
		return SourceReference, nil
	case "local":
		return SourceLocal, nil
	}
	return "", Errorf(EINVALID, "unknown source kind %q (want reference or local)", s)
}
