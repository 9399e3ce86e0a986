package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the content of a seed file: shared subjects and prompt templates.
type Catalog struct {
	Subjects  []SubjectSeed  `yaml:"subjects"`
	Templates []TemplateSeed `yaml:"templates"`
}

// SubjectSeed is one subject row, matched by name.
type SubjectSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

// TemplateSeed is one prompt template, matched by name. Active defaults to true.
type TemplateSeed struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Active      *bool  `yaml:"active"`
	Template    string `yaml:"template"`
}

// LoadCatalog reads and parses the catalog file at path.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return ParseCatalog(f)
}

// ParseCatalog decodes a YAML catalog. Unknown keys are rejected so typos in
// field names do not silently seed empty values.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}
