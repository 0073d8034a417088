package goquery_test

import (
	"testing"

	"github.com/fwojciec/apicheck"
	"github.com/fwojciec/apicheck/goquery"
	"github.com/stretchr/testify/assert"
)

// Ensure Detector implements apicheck.Detector at compile time.
var _ apicheck.Detector = (*goquery.Detector)(nil)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("detects rustdoc from meta generator", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><meta name="generator" content="rustdoc"><title>Vec in std::vec - Rust</title></head>
<body></body>
</html>`

		g := goquery.NewDetector().Detect(html)

		assert.True(t, g.IsRustdoc())
		assert.Empty(t, g.Version)
	})

	t.Run("reads version, channel and crate from rustdoc-vars meta", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head>
<meta name="generator" content="rustdoc">
<meta name="rustdoc-vars" data-root-path="../../" data-static-root-path="../../static.files/" data-current-crate="std" data-themes="" data-resource-suffix="" data-rustdoc-version="1.80.0 (051478957 2024-07-21)" data-channel="1.80.0" data-search-js="search.js">
</head>
<body class="rustdoc struct"></body>
</html>`

		g := goquery.NewDetector().Detect(html)

		assert.Equal(t, apicheck.Generator{
			Name:    "rustdoc",
			Version: "1.80.0",
			Channel: "1.80.0",
			Crate:   "std",
		}, g)
	})

	t.Run("reads crate from legacy rustdoc-vars div without generator meta", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="en">
<head><title>Vec in gdvariants::vec - Rust</title></head>
<body>
<div id="rustdoc-vars" data-root-path="../../" data-current-crate="gdvariants" data-search-index-js="../../search-index.js"></div>
</body>
</html>`

		g := goquery.NewDetector().Detect(html)

		assert.True(t, g.IsRustdoc())
		assert.Equal(t, "gdvariants", g.Crate)
		assert.Empty(t, g.Channel)
	})

	t.Run("detects rustdoc from body class", func(t *testing.T) {
		t.Parallel()

		html := `<html><body class="rustdoc struct"><main></main></body></html>`

		assert.True(t, goquery.NewDetector().Detect(html).IsRustdoc())
	})

	t.Run("reports other generators by name", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><meta name="generator" content="Sphinx 7.2.6"></head>
<body><div class="sphinxsidebar"></div></body>
</html>`

		g := goquery.NewDetector().Detect(html)

		assert.False(t, g.IsRustdoc())
		assert.Equal(t, "sphinx 7.2.6", g.Name)
	})

	t.Run("returns zero generator for plain HTML", func(t *testing.T) {
		t.Parallel()

		g := goquery.NewDetector().Detect(`<html><body><h1>Hello</h1></body></html>`)

		assert.Equal(t, apicheck.Generator{}, g)
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		assert.False(t, goquery.NewDetector().Detect("").IsRustdoc())
	})
}
