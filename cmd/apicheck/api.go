package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/apicheck"
	"github.com/goccy/go-json"
)

// Run executes the api command.
func (c *APICmd) Run(deps *Dependencies) error {
	kind, err := apicheck.ParseSourceKind(c.Kind)
	if err != nil {
		return err
	}
	source, err := deps.Info.FindSource(c.Item)
	if err != nil {
		return err
	}

	doc, err := deps.Checker.Surface(deps.Ctx, source, kind)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc)
	}
	writeSurface(deps.Stdout, doc.Surface)
	if doc.Generator.Name != "" {
		fmt.Fprintf(deps.Stdout, "\nGenerated by %s\n", doc.Generator)
	}
	return nil
}

// writeSurface prints a surface as an indented outline: impl headers under
// their section, methods under their impl.
func writeSurface(w io.Writer, s *apicheck.Surface) {
	fmt.Fprintf(w, "%s\n", s.Name)
	fmt.Fprintf(w, "%s\n", s.Declaration)
	writeImpls(w, "Implementations", s.Implementations)
	writeImpls(w, "Trait Implementations", s.TraitImplementations)
}

func writeImpls(w io.Writer, title string, impls []apicheck.Impl) {
	fmt.Fprintf(w, "\n%s (%d)\n", title, len(impls))
	for _, impl := range impls {
		fmt.Fprintf(w, "  %s\n", impl.Header)
		for _, method := range impl.Methods {
			fmt.Fprintf(w, "    %s\n", method)
		}
	}
}
