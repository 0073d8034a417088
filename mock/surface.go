package mock

import "github.com/fwojciec/apicheck"

var _ apicheck.Parser = (*Parser)(nil)

// Parser is a mock implementation of apicheck.Parser.
type Parser struct {
	ParseFn func(markup string) (*apicheck.Node, error)
}

func (p *Parser) Parse(markup string) (*apicheck.Node, error) {
	return p.ParseFn(markup)
}

var _ apicheck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of apicheck.Extractor.
type Extractor struct {
	ExtractFn func(doc *apicheck.Node) (*apicheck.Surface, error)
}

func (e *Extractor) Extract(doc *apicheck.Node) (*apicheck.Surface, error) {
	return e.ExtractFn(doc)
}

var _ apicheck.Detector = (*Detector)(nil)

// Detector is a mock implementation of apicheck.Detector.
type Detector struct {
	DetectFn func(markup string) apicheck.Generator
}

func (d *Detector) Detect(markup string) apicheck.Generator {
	return d.DetectFn(markup)
}
