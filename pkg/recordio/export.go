package recordio

import (
	"encoding/json"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
)

// Write encodes rec in format f to w. The output can be read back with
// [Read].
func Write(w io.Writer, rec card.RepositoryRecord, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode json record")
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode yaml record")
		}
		return enc.Close()
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unknown record format %q", f)
}

// Export writes rec to path, inferring the format from its extension.
func Export(rec card.RepositoryRecord, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "create %s", path)
	}
	if err := Write(file, rec, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
