package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dienstplan/dienstplan/pkg/roster"
)

// WriteJSON encodes a week as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(w *roster.Week, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a week to a JSON file at path.
func ExportJSON(w *roster.Week, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(w, f)
}
