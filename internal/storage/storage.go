package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadDocument opens and parses an INI file. Any failure is returned.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Bootstrap creates path containing only an empty [section] header when
// it does not exist yet. It reports whether a file was created and never
// touches an existing file.
func Bootstrap(path, section string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating config dir: %w", err)
	}

	doc := NewDocument()
	doc.EnsureSection(section)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return false, fmt.Errorf("creating config: %w", err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return false, fmt.Errorf("writing config: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("writing config: %w", err)
	}
	return true, nil
}

// SaveDocument writes doc over path in place. An existing file keeps its mode.
func SaveDocument(path string, doc *Document) error {
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
