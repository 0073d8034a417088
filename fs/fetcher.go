// Package fs provides file-based access to locally generated documentation
// and to the checker configuration.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/apicheck"
)

// DefaultDocRoot is where cargo doc writes its output.
const DefaultDocRoot = "target/doc"

// Ensure DocFetcher implements apicheck.Fetcher at compile time.
var _ apicheck.Fetcher = (*DocFetcher)(nil)

// DocFetcher reads documentation pages from a directory tree. Locations are
// slash-separated paths relative to the root.
type DocFetcher struct {
	root string
}

// NewDocFetcher creates a DocFetcher rooted at root.
func NewDocFetcher(root string) *DocFetcher {
	return &DocFetcher{root: root}
}

// NewCrateFetcher creates a DocFetcher for the documentation of one crate
// under docRoot, i.e. <docRoot>/<crate>.
func NewCrateFetcher(docRoot, crate string) *DocFetcher {
	return NewDocFetcher(filepath.Join(docRoot, crate))
}

// Root returns the directory pages are read from.
func (f *DocFetcher) Root() string {
	return f.root
}

// Fetch returns the contents of the page at location.
// Returns EINVALID if location escapes the root and ENOTFOUND if the page
// does not exist.
func (f *DocFetcher) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := filepath.FromSlash(location)
	if !filepath.IsLocal(rel) {
		return "", apicheck.Errorf(apicheck.EINVALID, "local location %q escapes %s", location, f.root)
	}

	path := filepath.Join(f.root, rel)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", apicheck.Errorf(apicheck.ENOTFOUND, "local page not found: %s (run cargo doc first?)", path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op; files are opened and closed per fetch.
func (f *DocFetcher) Close() error {
	return nil
}
