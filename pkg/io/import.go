package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/spellgrid/pkg/errors"
	"github.com/matzehuels/spellgrid/pkg/layout"
)

// ReadJSON decodes a JSON BaseData document from r.
//
// Unknown fields are ignored so documents produced by newer hosts still
// load. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*layout.BaseData, error) {
	var data layout.BaseData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON")
	}
	if err := checkMode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// ReadTOML decodes a TOML BaseData document from r.
func ReadTOML(r io.Reader) (*layout.BaseData, error) {
	var data layout.BaseData
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode TOML")
	}
	if err := checkMode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Import reads the file at path, choosing the decoder by extension: ".toml"
// is TOML, anything else JSON.
func Import(path string) (*layout.BaseData, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

func checkMode(d *layout.BaseData) error {
	known := make([]string, len(layout.Modes))
	for i, m := range layout.Modes {
		known[i] = string(m)
	}
	return errors.ValidateMode(string(d.Mode), known)
}
