package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type format int

const (
	formatJSON format = iota + 1
	formatYAML
)

// formatOf resolves the document format from the file extension alone.
func formatOf(path string) (format, error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".json":
		return formatJSON, nil
	case ".yml", ".yaml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// loadFromFile reads and decodes the document at path into a Map.
// Read and parse errors are returned unwrapped.
func loadFromFile(path string) (Map, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc any
	switch f {
	case formatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
		if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrExtraData, path)
		}
	case formatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			// An empty YAML stream has no document at all.
			if errors.Is(err, io.EOF) {
				return Map{}, nil
			}
			return nil, err
		}
		if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrExtraData, path)
		}
		// A document holding only null decodes to nil.
		if doc == nil {
			return Map{}, nil
		}
	}

	switch doc.(type) {
	case map[string]any, map[any]any:
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotMapping, path)
	}

	value, err := ValueOf(doc)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", path, err)
	}
	return value.(Map), nil
}
