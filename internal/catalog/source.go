package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// Load decodes the embedded YAML document.
func (EmbeddedSource) Load(_ context.Context) (Document, error) {
	return DecodeYAML(bytes.NewReader(embeddedCatalog))
}

// FileSource reads a catalog document from disk. The format is chosen by
// extension: .json is JSON, anything else is YAML.
type FileSource struct {
	Path string
}

// Load reads and decodes the file at s.Path.
func (s FileSource) Load(_ context.Context) (Document, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(s.Path), ".json") {
		return DecodeJSON(f)
	}
	return DecodeYAML(f)
}

// DecodeYAML reads a Document from YAML. Unknown fields are rejected so typos
// in hand-edited catalogs fail at startup.
func DecodeYAML(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode yaml: %w", err)
	}
	return doc, nil
}

// DecodeJSON reads a Document from JSON, rejecting unknown fields.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode json: %w", err)
	}
	return doc, nil
}

// Default returns the validated embedded catalog. It panics if the embedded
// document is malformed, which a test guards against.
func Default() *Catalog {
	return MustOpen(context.Background(), EmbeddedSource{})
}
