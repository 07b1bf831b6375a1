package registry

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed is wrapped by every error caused by an unreadable or
// structurally invalid registry document.
var ErrMalformed = errors.New("malformed registry")

// LoadFile loads and decodes a registry document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read registry file %s: %w", ErrMalformed, path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// LoadFiles loads every path in order. The first failure aborts the load.
func LoadFiles(paths []string) ([]*Document, error) {
	docs := make([]*Document, 0, len(paths))

	for _, p := range paths {
		doc, err := LoadFile(p)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// Parse decodes registry XML.
func Parse(data []byte) (*Document, error) {
	var doc Document

	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse registry XML: %w", ErrMalformed, err)
	}

	return &doc, nil
}
