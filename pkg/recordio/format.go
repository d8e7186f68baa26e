package recordio

import (
	"path/filepath"
	"strings"

	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
)

// Format is a record serialization format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer record format from %q (use .json, .yaml or .yml)", path)
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unknown record format %q (available: json, yaml)", s)
}
