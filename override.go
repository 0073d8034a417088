package apicheck

// OverrideKind selects which impl list an override applies to.
type OverrideKind string

// Override kinds.
const (
	OverrideImplementation OverrideKind = "implementation"
	OverrideTrait          OverrideKind = "trait"
)

// Override reconciles a known difference between the reference surface and
// the local one. It matches a reference impl by header; a nil Value drops the
// impl from comparison, otherwise the header is replaced by Value and the
// methods listed in Methods are renamed.
type Override struct {
	Kind    OverrideKind     `json:"kind" yaml:"kind"`
	Name    string           `json:"name" yaml:"name"`
	Value   *string          `json:"value" yaml:"value"`
	Methods []MethodOverride `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// MethodOverride renames a single method of an overridden impl. A nil Value
// leaves the method unchanged.
type MethodOverride struct {
	Name  string  `json:"name" yaml:"name"`
	Value *string `json:"value" yaml:"value"`
}

// Validate returns an error if the override contains invalid fields.
func (o *Override) Validate() error {
	switch o.Kind {
	case OverrideImplementation, OverrideTrait:
	default:
		return Errorf(EINVALID, "override %q has unknown kind %q", o.Name, o.Kind)
	}
	if o.Name == "" {
		return Errorf(EINVALID, "override name required")
	}
	for _, m := range o.Methods {
		if m.Name == "" {
			return Errorf(EINVALID, "override %q has a method without name", o.Name)
		}
	}
	return nil
}

// OverrideAction is the outcome of resolving overrides for one impl.
type OverrideAction int

// Override actions.
const (
	OverrideKeep OverrideAction = iota
	OverrideDrop
	OverrideRename
)

// OverrideDecision is the resolved treatment of one impl header.
type OverrideDecision struct {
	Action  OverrideAction
	Header  string
	Methods []MethodOverride
}

// ResolveOverride returns how the impl with header in the list of the given
// kind is treated. The first matching override wins.
func ResolveOverride(overrides []Override, kind OverrideKind, header string) OverrideDecision {
	for _, o := range overrides {
		if o.Kind != kind || o.Name != header {
			continue
		}
		if o.Value == nil {
			return OverrideDecision{Action: OverrideDrop}
		}
		return OverrideDecision{Action: OverrideRename, Header: *o.Value, Methods: o.Methods}
	}
	return OverrideDecision{Action: OverrideKeep, Header: header}
}

// Apply returns impl with the decision applied and false if the impl is dropped.
func (d OverrideDecision) Apply(impl Impl) (Impl, bool) {
	switch d.Action {
	case OverrideDrop:
		return Impl{}, false
	case OverrideRename:
		methods := make([]string, len(impl.Methods))
		for i, m := range impl.Methods {
			methods[i] = renameMethod(d.Methods, m)
		}
		return Impl{Header: d.Header, Methods: methods}, true
	default:
		return Impl{Header: impl.Header, Methods: append([]string(nil), impl.Methods...)}, true
	}
}

func renameMethod(overrides []MethodOverride, method string) string {
	for _, o := range overrides {
		if o.Name == method {
			if o.Value != nil {
				return *o.Value
			}
			break
		}
	}
	return method
}

// ApplyOverrides returns a copy of surface with overrides applied to its
// implementation and trait implementation lists. surface is not modified.
func ApplyOverrides(overrides []Override, surface *Surface) *Surface {
	return &Surface{
		Name:                 surface.Name,
		Declaration:          surface.Declaration,
		Implementations:      applyOverrides(overrides, OverrideImplementation, surface.Implementations),
		TraitImplementations: applyOverrides(overrides, OverrideTrait, surface.TraitImplementations),
	}
}

func applyOverrides(overrides []Override, kind OverrideKind, impls []Impl) []Impl {
	out := make([]Impl, 0, len(impls))
	for _, impl := range impls {
		if applied, ok := ResolveOverride(overrides, kind, impl.Header).Apply(impl); ok {
			out = append(out, applied)
		}
	}
	return out
}
