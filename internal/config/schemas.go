// Package config loads display-schema definitions from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/svcfmt/fieldfmt/internal/fieldfmt"
	"github.com/svcfmt/fieldfmt/internal/schema"
)

// SchemaFile is the top-level document shape.
type SchemaFile struct {
	Schemas []SchemaDef `yaml:"schemas"`
}

// SchemaDef declares one named schema.
type SchemaDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares one display field.
type FieldDef struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Label    string `yaml:"label"`
	HelpText string `yaml:"help_text"`
	Required bool   `yaml:"required"`
}

// Loader handles parsing of schema definition files
type Loader struct{}

// NewLoader creates a new schema loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFromFile loads schema definitions from a YAML file
func (l *Loader) LoadFromFile(filename string) ([]schema.Schema, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file SchemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	schemas, err := l.build(&file)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	return schemas, nil
}

// BuildRegistry loads a definition file and registers every schema.
func (l *Loader) BuildRegistry(filename string) (*schema.Registry, error) {
	schemas, err := l.LoadFromFile(filename)
	if err != nil {
		return nil, err
	}
	registry := schema.NewRegistry()
	for _, s := range schemas {
		registry.Register(s)
	}
	return registry, nil
}

func (l *Loader) build(file *SchemaFile) ([]schema.Schema, error) {
	if len(file.Schemas) == 0 {
		return nil, fmt.Errorf("no schemas defined")
	}

	schemas := make([]schema.Schema, 0, len(file.Schemas))
	seenSchemas := make(map[string]bool, len(file.Schemas))
	for _, def := range file.Schemas {
		if def.Name == "" {
			return nil, fmt.Errorf("schema with empty name")
		}
		if seenSchemas[def.Name] {
			return nil, fmt.Errorf("duplicate schema %q", def.Name)
		}
		seenSchemas[def.Name] = true
		if len(def.Fields) == 0 {
			return nil, fmt.Errorf("schema %q has no fields", def.Name)
		}

		seen := make(map[string]bool, len(def.Fields))
		fields := make([]schema.Field, 0, len(def.Fields))
		for _, fd := range def.Fields {
			if fd.Name == "" {
				return nil, fmt.Errorf("schema %q: field with empty name", def.Name)
			}
			if seen[fd.Name] {
				return nil, fmt.Errorf("schema %q: duplicate field %q", def.Name, fd.Name)
			}
			seen[fd.Name] = true

			kind, err := fieldfmt.ParseKind(fd.Kind)
			if err != nil {
				return nil, fmt.Errorf("schema %q: field %q: %w", def.Name, fd.Name, err)
			}
			fields = append(fields, schema.Field{
				Name:     fd.Name,
				Label:    fd.Label,
				HelpText: fd.HelpText,
				Kind:     kind,
				Required: fd.Required,
			})
		}
		schemas = append(schemas, schema.Schema{Name: def.Name, Fields: fields})
	}
	return schemas, nil
}
