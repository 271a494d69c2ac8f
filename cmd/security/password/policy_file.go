package password

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// policyDocument is the YAML form of a Policy. Absent keys keep their defaults.
type policyDocument struct {
	MinLength      *int     `yaml:"min_length"`
	MaxLength      *int     `yaml:"max_length"`
	Required       *int     `yaml:"required"`
	Pool           []string `yaml:"pool"`
	SpecialChars   *string  `yaml:"special_chars"`
	AllowedSymbols *string  `yaml:"allowed_symbols"`
}

// LoadPolicyFile reads a YAML policy document from path.
func LoadPolicyFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy file %s: %w", path, err)
	}
	p, err := ParsePolicy(data)
	if err != nil {
		return Policy{}, fmt.Errorf("policy file %s: %w", path, err)
	}
	return p, nil
}

// ParsePolicy decodes a YAML policy document on top of DefaultPolicy.
// Unknown keys are rejected.
func ParsePolicy(data []byte) (Policy, error) {
	var doc policyDocument

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("parse yaml: %w", err)
	}

	p := DefaultPolicy()
	if doc.MinLength != nil {
		p.MinLength = *doc.MinLength
	}
	if doc.MaxLength != nil {
		p.MaxLength = *doc.MaxLength
	}
	if doc.Required != nil {
		p.Required = *doc.Required
	}
	if doc.Pool != nil {
		pool, err := parsePool(doc.Pool)
		if err != nil {
			return Policy{}, err
		}
		p.Pool = pool
	}
	if doc.SpecialChars != nil {
		p.SpecialChars = *doc.SpecialChars
	}
	if doc.AllowedSymbols != nil {
		p.AllowedSymbols = *doc.AllowedSymbols
	}

	if err := p.Check(); err != nil {
		return Policy{}, err
	}
	return p, nil
}
