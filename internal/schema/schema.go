// Package schema declares display-field schemas and renders records
// through them. Fields here are presentation-only: the read path formats
// values via fieldfmt, the write path is an intentional pass-through.
package schema

import (
	"fmt"

	"github.com/svcfmt/fieldfmt/internal/fieldfmt"
)

// Field is a declared display field of a schema.
type Field struct {
	Name     string
	Label    string
	HelpText string
	Kind     fieldfmt.Kind
	Required bool
}

// Ingest accepts raw input unchanged. These fields are never written
// through; the serialization layer calls this only to satisfy the
// two-way field contract.
func (f Field) Ingest(raw any) any { return raw }

// Meta returns the field's discovery metadata.
func (f Field) Meta() FieldMeta {
	return FieldMeta{
		Name:     f.Name,
		Label:    f.Label,
		HelpText: f.HelpText,
		Kind:     f.Kind.String(),
		Required: f.Required,
		ReadOnly: true,
	}
}

// FieldMeta describes a field to schema-discovery consumers.
type FieldMeta struct {
	Name     string `json:"name" yaml:"name"`
	Label    string `json:"label" yaml:"label"`
	HelpText string `json:"help_text" yaml:"help_text"`
	Kind     string `json:"kind" yaml:"kind"`
	Required bool   `json:"required" yaml:"required"`
	ReadOnly bool   `json:"read_only" yaml:"read_only"`
}

// Schema is a named, ordered set of display fields.
type Schema struct {
	Name   string
	Fields []Field
}

// Render formats every declared field of record. Missing optional
// fields are skipped; a missing required field or an unformattable
// value fails the whole record.
func (s Schema) Render(f *fieldfmt.Formatter, record map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(s.Fields))
	for _, field := range s.Fields {
		raw, ok := record[field.Name]
		if !ok {
			if field.Required {
				return nil, fmt.Errorf("schema %q: missing required field %q", s.Name, field.Name)
			}
			continue
		}
		formatted, err := f.Format(field.Kind, raw)
		if err != nil {
			return nil, fmt.Errorf("schema %q: field %q: %w", s.Name, field.Name, err)
		}
		out[field.Name] = formatted
	}
	return out, nil
}

// Metadata returns discovery metadata for every field, in declaration
// order.
func (s Schema) Metadata() []FieldMeta {
	meta := make([]FieldMeta, 0, len(s.Fields))
	for _, field := range s.Fields {
		meta = append(meta, field.Meta())
	}
	return meta
}
