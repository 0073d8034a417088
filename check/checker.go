// Package check orchestrates API conformance checks. It fetches the
// reference and local documentation pages of a source, extracts their API
// surfaces, reconciles known differences and compares the results.
package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/apicheck"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources checked at once by CheckAll.
const DefaultConcurrency = 4

// Checker checks local API surfaces against their reference surfaces.
type Checker struct {
	Reference   apicheck.Fetcher
	Local       apicheck.Fetcher
	Parser      apicheck.Parser
	Extractor   apicheck.Extractor
	Detector    apicheck.Detector
	RateLimiter apicheck.RateLimiter
	Runs        apicheck.RunService

	// Crate is the local crate recorded with runs created by Check.
	Crate string

	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Document is an extracted API surface together with what is known about
// the page it came from.
type Document struct {
	Surface   *apicheck.Surface  `json:"surface"`
	Hash      string             `json:"hash"`
	Generator apicheck.Generator `json:"generator"`
}

// Result is the outcome of checking one source.
type Result struct {
	Source        string   `json:"source"`
	OK            bool     `json:"ok"`
	Report        []string `json:"report"`
	ReferenceHash string   `json:"referenceHash"`
	LocalHash     string   `json:"localHash"`
}

// Surface fetches and extracts the document of the given kind for source.
// Pages not generated by rustdoc are rejected with EINVALID when a Detector
// is configured, as are local pages rendered for a crate other than Crate.
func (c *Checker) Surface(ctx context.Context, source *apicheck.Source, kind apicheck.SourceKind) (*Document, error) {
	return c.surface(ctx, c.Crate, source, kind)
}

func (c *Checker) surface(ctx context.Context, crate string, source *apicheck.Source, kind apicheck.SourceKind) (*Document, error) {
	location := source.Location(kind)

	markup, err := c.fetch(ctx, kind, location)
	if err != nil {
		return nil, fmt.Errorf("fetch %s page of %s: %w", kind, source.Name, err)
	}

	var generator apicheck.Generator
	if c.Detector != nil {
		generator = c.Detector.Detect(markup)
		if !generator.IsRustdoc() {
			name := generator.Name
			if name == "" {
				name = "unknown"
			}
			return nil, apicheck.Errorf(apicheck.EINVALID, "%s page of %s at %s was not generated by rustdoc (generator: %s)", kind, source.Name, location, name)
		}
		if kind == apicheck.SourceLocal && !generator.OwnedBy(crate) {
			return nil, apicheck.Errorf(apicheck.EINVALID, "local page of %s at %s documents crate %s, not %s", source.Name, location, generator.Crate, crate)
		}
	}

	doc, err := c.Parser.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("parse %s page of %s: %w", kind, source.Name, err)
	}

	surface, err := c.Extractor.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("extract %s surface of %s: %w", kind, source.Name, err)
	}

	return &Document{
		Surface:   surface,
		Hash:      ComputeHash(markup),
		Generator: generator,
	}, nil
}

func (c *Checker) fetch(ctx context.Context, kind apicheck.SourceKind, location string) (string, error) {
	if kind == apicheck.SourceLocal {
		return c.Local.Fetch(ctx, location)
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, location); err != nil {
			return "", err
		}
	}
	return fetchWithRetry(ctx, c.Reference, location, c.RetryDelays, c.Logger)
}

// Check compares the local surface of source against its reference surface
// after applying the source's overrides. Gaps are reported in the result,
// not as an error. The run is recorded when Runs is set.
func (c *Checker) Check(ctx context.Context, source *apicheck.Source) (*Result, error) {
	return c.check(ctx, c.Crate, source)
}

func (c *Checker) check(ctx context.Context, crate string, source *apicheck.Source) (*Result, error) {
	reference, err := c.surface(ctx, crate, source, apicheck.SourceReference)
	if err != nil {
		return nil, err
	}
	local, err := c.surface(ctx, crate, source, apicheck.SourceLocal)
	if err != nil {
		return nil, err
	}

	expected := apicheck.ApplyOverrides(source.Overrides, reference.Surface)
	ok, report := apicheck.Check(local.Surface, expected)

	result := &Result{
		Source:        source.Name,
		OK:            ok,
		Report:        report,
		ReferenceHash: reference.Hash,
		LocalHash:     local.Hash,
	}

	if c.Runs != nil {
		run := &apicheck.Run{
			Crate:         crate,
			Source:        source.Name,
			OK:            ok,
			Gaps:          report,
			ReferenceHash: reference.Hash,
			LocalHash:     local.Hash,
		}
		if err := c.Runs.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("record run of %s: %w", source.Name, err)
		}
	}

	return result, nil
}

// CheckAll checks every source of info concurrently. Results are returned in
// configuration order. The first failing check cancels the remaining ones.
func (c *Checker) CheckAll(ctx context.Context, info *apicheck.Info) ([]*Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*Result, len(info.Sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range info.Sources {
		source := &info.Sources[i]
		g.Go(func() error {
			result, err := c.check(gctx, info.Name, source)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
