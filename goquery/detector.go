// Package goquery identifies documentation generators from raw markup using
// CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/apicheck"
)

// Ensure Detector implements apicheck.Detector at compile time.
var _ apicheck.Detector = (*Detector)(nil)

// rustdocVarsSelector matches the element carrying rustdoc's page variables.
// Older releases use a div, newer ones a meta tag.
const rustdocVarsSelector = "#rustdoc-vars, meta[name='rustdoc-vars']"

// Detector identifies documentation generators from HTML content.
// It checks the meta generator tag, rustdoc's page variables and the
// rustdoc body class.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes markup and returns its generator.
// Returns a zero Generator if the generator cannot be determined.
func (d *Detector) Detect(markup string) apicheck.Generator {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return apicheck.Generator{}
	}

	generator := d.metaGenerator(doc)
	vars := doc.Find(rustdocVarsSelector).First()

	if !strings.Contains(generator, apicheck.GeneratorRustdoc) &&
		vars.Length() == 0 &&
		!d.hasSelector(doc, "body.rustdoc") {
		return apicheck.Generator{Name: generator}
	}

	g := apicheck.Generator{Name: apicheck.GeneratorRustdoc}
	if version, ok := vars.Attr("data-rustdoc-version"); ok {
		// "1.80.0 (051478957 2024-07-21)" -> "1.80.0"
		if fields := strings.Fields(version); len(fields) > 0 {
			g.Version = fields[0]
		}
	}
	g.Channel, _ = vars.Attr("data-channel")
	g.Crate, _ = vars.Attr("data-current-crate")
	return g
}

// metaGenerator returns the lowercased content of the meta generator tag.
func (d *Detector) metaGenerator(doc *goquery.Document) string {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(strings.TrimSpace(content))
		}
	})
	return generator
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
