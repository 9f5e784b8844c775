package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dienstplan/dienstplan/pkg/errors"
	"github.com/dienstplan/dienstplan/pkg/roster"
)

// ReadJSON decodes a week written by [WriteJSON]. A missing catalog is
// replaced by an empty one. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*roster.Week, error) {
	var w roster.Week
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode week")
	}
	if w.Catalog == nil {
		w.Catalog = roster.NewCatalog()
	}
	if w.Staff == nil {
		w.Staff = roster.Directory{}
	}
	return &w, nil
}

// ImportJSON reads a JSON week from the file at path.
func ImportJSON(path string) (*roster.Week, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
