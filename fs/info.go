package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/apicheck"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DefaultInfoPath is the configuration file read when none is given.
const DefaultInfoPath = "info.json"

// LoadInfo reads and validates the checker configuration at path.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
// Unknown keys are rejected in both formats.
//
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// decoded or fails validation.
func LoadInfo(path string) (*apicheck.Info, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apicheck.Errorf(apicheck.ENOTFOUND, "info file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := DecodeInfo(f, formatOf(path))
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Format is a configuration file encoding.
type Format string

// Configuration formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeInfo decodes and validates a configuration document read from r.
func DecodeInfo(r io.Reader, format Format) (*apicheck.Info, error) {
	var info apicheck.Info
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&info); err != nil {
			return nil, apicheck.Errorf(apicheck.EINVALID, "malformed info file: %v", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&info); err != nil {
			return nil, apicheck.Errorf(apicheck.EINVALID, "malformed info file: %v", err)
		}
	default:
		return nil, apicheck.Errorf(apicheck.EINVALID, "unknown info format %q", format)
	}

	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &info, nil
}
