package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/localdumbkat/polywal/internal/model"
)

// LoadPalette reads the pywal color cache, one color per line
func LoadPalette(path string) (model.Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Palette{}, fmt.Errorf("opening color cache: %w", err)
	}
	defer f.Close()

	p, err := ParsePalette(f)
	if err != nil {
		return model.Palette{}, fmt.Errorf("reading color cache %s: %w", path, err)
	}
	return p, nil
}

// ParsePalette keeps every non-blank line, trimmed, in order
func ParsePalette(r io.Reader) (model.Palette, error) {
	var colors []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if c := strings.TrimSpace(scanner.Text()); c != "" {
			colors = append(colors, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return model.Palette{}, err
	}
	return model.NewPalette(colors), nil
}
