package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dashview/internal/model"
)

// Document is a parsed seed file.
type Document struct {
	Owner      *Owner         `json:"owner,omitempty" yaml:"owner,omitempty"`
	Pharmacies []model.Record `json:"pharmacies" yaml:"pharmacies"`
	SearchTerm string         `json:"search_term,omitempty" yaml:"search_term,omitempty"`
}

// LoadFile reads and validates a seed file. Supported extensions are
// .yaml, .yml and .json.
func LoadFile(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("unsupported seed file extension %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Load reads and validates a seed from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed content. JSON is accepted as YAML.
// Unknown keys are rejected so typos in column names surface early.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, &model.Error{Code: model.ErrCodeInvalidInput, Message: "seed is empty"}
	}

	doc := &Document{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var err error
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		err = decoder.Decode(&doc.Pharmacies)
	case yaml.MappingNode:
		err = decoder.Decode(doc)
	default:
		return nil, &model.Error{Code: model.ErrCodeInvalidInput, Message: "seed must be a list of pharmacies or a mapping with a pharmacies key"}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	if doc.Pharmacies == nil {
		doc.Pharmacies = []model.Record{}
	}

	if err := Validate(doc.Pharmacies); err != nil {
		return nil, err
	}
	return doc, nil
}
