package apicheck

import (
	"fmt"
	"slices"
	"strings"
)

// PathSeparator separates the segments of a fully qualified item path.
const PathSeparator = "::"

// Namespace returns the segments of name after the crate root, so
// "std::vec::Vec" and "gdvariants::vec::Vec" both yield ["vec", "Vec"].
func Namespace(name string) []string {
	segments := strings.Split(name, PathSeparator)
	return segments[1:]
}

// Check verifies that candidate offers everything reference offers: the same
// namespace below the crate root, every reference impl header and every
// method of each. All gaps are collected; ok is true only when report is
// empty. Reference impls and methods are visited in extracted order, so the
// report is deterministic. A reference header is matched against the first
// candidate impl with an equal header.
func Check(candidate, reference *Surface) (ok bool, report []string) {
	candidateNS, referenceNS := Namespace(candidate.Name), Namespace(reference.Name)
	if !slices.Equal(candidateNS, referenceNS) {
		report = append(report, fmt.Sprintf("API namespace differs: %q != %q", candidateNS, referenceNS))
	}

	report = append(report, checkImpls(candidate.Implementations, reference.Implementations)...)
	report = append(report, checkImpls(candidate.TraitImplementations, reference.TraitImplementations)...)

	return len(report) == 0, report
}

func checkImpls(candidate, reference []Impl) []string {
	var report []string
	for _, ref := range reference {
		impl, ok := findImpl(candidate, ref.Header)
		if !ok {
			report = append(report, "API does not implement: "+ref.Header)
			continue
		}
		for _, method := range ref.Methods {
			if !slices.Contains(impl.Methods, method) {
				report = append(report, "API does not implement: "+ref.Header+" - "+method)
			}
		}
	}
	return report
}
