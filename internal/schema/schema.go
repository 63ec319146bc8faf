// Package schema maps a JSON Schema document onto interface
// declarations, as an alternative to inferring them from a sample value.
// Only the structural subset of the schema vocabulary is consulted:
// type, properties, required and items.
package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mcncl/tsgen/internal/config"
	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/naming"
)

// Type handles the JSON Schema type field, which can be a string or an
// array of strings.
type Type struct {
	Types []string
}

// UnmarshalJSON handles both string and array forms of type
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Types = []string{s}
		return nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		t.Types = arr
		return nil
	}

	return fmt.Errorf("type must be string or array of strings")
}

// Primary returns the first non-null type, or empty string if none
func (t Type) Primary() string {
	for _, typ := range t.Types {
		if typ != "null" {
			return typ
		}
	}
	return ""
}

// IsNullable returns true if "null" is one of the allowed types
func (t Type) IsNullable() bool {
	for _, typ := range t.Types {
		if typ == "null" {
			return true
		}
	}
	return false
}

// Schema represents the structural subset of a JSON Schema document
type Schema struct {
	Schema      string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	Type Type `json:"type,omitempty"`

	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`

	Items *Schema `json:"items,omitempty"`
}

// Parse decodes a JSON Schema document
func Parse(data []byte) (*Schema, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.NewInputError("schema input is empty", errors.ErrEmptyInput)
	}

	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.NewParsingError("failed to decode JSON Schema", errors.ErrInvalidJSON)
	}
	return &s, nil
}

// ToInterfaces converts the schema into interface definitions. The
// top-level declaration takes rootName; nested object properties are
// named from their property key. Property order is alphabetical, since
// schema objects carry no meaningful document order.
func ToInterfaces(s *Schema, rootName string, cfg *config.Config) models.Result {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if rootName == "" {
		rootName = config.DefaultRootName
	}

	c := &converter{cfg: cfg}

	// An array root samples its element schema, mirroring the value
	// pipeline's root selection.
	target := s
	if s.Type.Primary() == "array" && s.Items != nil {
		target = s.Items
	}

	if target == nil || target.Type.Primary() != "object" {
		return models.Result{Interfaces: []models.InterfaceDef{{Name: rootName}}}
	}

	return models.Result{Interfaces: c.walk(rootName, target)}
}

type converter struct {
	cfg *config.Config
}

func (c *converter) walk(name string, s *Schema) []models.InterfaceDef {
	def := models.InterfaceDef{
		Name:   name,
		Fields: make([]models.FieldDef, 0, len(s.Properties)),
	}
	var nested []models.InterfaceDef

	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		prop := s.Properties[key]
		field := models.FieldDef{
			JSONKey:  key,
			TSName:   c.cfg.FieldName(key),
			TSType:   c.token(name, key, prop),
			Optional: !required[key] || (prop != nil && prop.Type.IsNullable()),
		}
		def.Fields = append(def.Fields, field)

		if obj := objectSchema(prop); obj != nil {
			childName := c.interfaceName(name, key)
			if prop.Type.Primary() == "array" {
				childName = c.elementName(name, key)
			}
			nested = append(nested, c.walk(childName, obj)...)
		}
	}

	return append([]models.InterfaceDef{def}, nested...)
}

// objectSchema returns the object schema a property would declare, if
// any: the property itself, or the element schema of an array property.
func objectSchema(s *Schema) *Schema {
	for s != nil && s.Type.Primary() == "array" {
		s = s.Items
	}
	if s != nil && s.Type.Primary() == "object" {
		return s
	}
	return nil
}

func (c *converter) token(parentName, key string, s *Schema) string {
	if s == nil {
		return "any"
	}
	switch s.Type.Primary() {
	case "string":
		return "string"
	case "number", "integer":
		return "number"
	case "boolean":
		return "boolean"
	case "array":
		if s.Items == nil {
			return "any[]"
		}
		if s.Items.Type.Primary() == "object" {
			return c.elementName(parentName, key) + "[]"
		}
		return c.token(parentName, key, s.Items) + "[]"
	case "object":
		return c.interfaceName(parentName, key)
	default:
		return "any"
	}
}

func (c *converter) interfaceName(parentName, key string) string {
	name := c.cfg.InterfaceName(key)
	if c.cfg.Naming.ParentPrefix && parentName != "" {
		return parentName + name
	}
	return name
}

func (c *converter) elementName(parentName, key string) string {
	name := c.cfg.InterfaceName(key)
	if c.cfg.Arrays.SingularizeNames {
		name = naming.Singularize(name)
	}
	if c.cfg.Naming.ParentPrefix && parentName != "" {
		return parentName + name
	}
	return name
}
