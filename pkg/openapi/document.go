package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Document wraps the raw OpenAPI payload and where it came from.
type Document struct {
	location string
	raw      []byte
}

// NewDocument validates the inputs and copies raw.
func NewDocument(location string, raw []byte) (Document, error) {
	if location == "" {
		return Document{}, errors.New("openapi: location is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	return Document{location: location, raw: append([]byte(nil), raw...)}, nil
}

// Location reports where the document was read from.
func (d Document) Location() string {
	return d.location
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// LoadFile reads a document from disk.
func LoadFile(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	clean := filepath.Clean(path)
	data, err := os.ReadFile(clean)
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", clean, err)
	}
	return NewDocument(clean, data)
}

// LoadFS reads a document from fsys.
func LoadFS(ctx context.Context, fsys fs.FS, name string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if fsys == nil {
		return Document{}, errors.New("openapi: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("openapi: read %s: %w", name, err)
	}
	return NewDocument(name, data)
}
