package recordio

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
)

// Read decodes one record in format f from r. An empty document is an
// INVALID_FORMAT error. Read does not close r.
func Read(r io.Reader, f Format) (card.RepositoryRecord, error) {
	var rec card.RepositoryRecord
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&rec)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&rec)
	default:
		return rec, errs.New(errs.ErrCodeInvalidFormat, "unknown record format %q", f)
	}
	if errors.Is(err, io.EOF) {
		return rec, errs.New(errs.ErrCodeInvalidFormat, "empty %s record", f)
	}
	if err != nil {
		return rec, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode %s record", f)
	}
	return rec, nil
}

// Import reads the record file at path, inferring the format from its
// extension.
func Import(path string) (card.RepositoryRecord, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return card.RepositoryRecord{}, err
	}
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return card.RepositoryRecord{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "record file %s", path)
	}
	if err != nil {
		return card.RepositoryRecord{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer file.Close()

	rec, err := Read(file, f)
	if err != nil {
		return rec, errs.Wrap(errs.GetCode(err), err, "%s", path)
	}
	return rec, nil
}
