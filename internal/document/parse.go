package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing document %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML (1.2) or JSON reference document and checks the keys the
// header generation depends on. The name is optional here, it is only
// required when no class name is given explicitly.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	doc := &Document{
		Kind:     Class,
		Summary:  raw.Summary,
		Inherits: raw.Inherits,
	}
	if t, ok := raw.Type.(string); ok && t == string(Datatype) {
		doc.Kind = Datatype
	}
	if raw.Name != nil {
		doc.Name = *raw.Name
	}

	if raw.Properties == nil {
		return nil, &FieldError{Field: "properties"}
	}
	doc.Properties = *raw.Properties
	for i, p := range doc.Properties {
		if p.Name == "" {
			return nil, &FieldError{Field: fmt.Sprintf("properties[%d].name", i)}
		}
		if p.Type == "" {
			return nil, &FieldError{Field: fmt.Sprintf("properties[%d].type", i)}
		}
	}

	if doc.Kind == Datatype {
		if raw.Constructors == nil {
			return nil, &FieldError{Field: "constructors"}
		}
		doc.Constructors = *raw.Constructors
	}

	return doc, nil
}
