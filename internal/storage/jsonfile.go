// Package storage persists the register document as one human-readable JSON
// file, replaced atomically on every write.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/okovalenko/kadry/internal/personnel"
)

// JSONFile reads and writes the whole document at a fixed path.
type JSONFile struct {
	path string
}

var _ personnel.PersistenceStore = (*JSONFile)(nil)

// NewJSONFile builds a collaborator for the given file path. The file does
// not have to exist yet; the first ReadAll reports personnel.ErrNoDocument.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the backing file path.
func (f *JSONFile) Path() string {
	return f.path
}

// ReadAll parses the whole document.
func (f *JSONFile) ReadAll() (personnel.Document, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return personnel.Document{}, personnel.ErrNoDocument
		}
		return personnel.Document{}, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	var doc personnel.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return personnel.Document{}, fmt.Errorf("storage: parse %s: %w", f.path, err)
	}
	return doc, nil
}

// WriteAll replaces the document on disk. Write to a temp file, then rename:
// a crash mid-write leaves the previous document intact.
func (f *JSONFile) WriteAll(doc personnel.Document) error {
	encoded, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", f.path, err)
	}
	encoded = append(encoded, '\n')
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: ensure dir for %s: %w", f.path, err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: replace %s: %w", f.path, err)
	}
	return nil
}
