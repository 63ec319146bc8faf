// Package analyzer walks a parsed JSON value and derives the set of
// interface declarations it implies. Discovery is pre-order: an object's
// declaration is recorded before its nested shapes, and each field's
// subtree is emitted before the next field is visited.
package analyzer

import (
	"github.com/mcncl/tsgen/internal/config"
	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/naming"
)

// Analyzer analyzes JSON values and determines interface definitions
type Analyzer struct {
	config *config.Config
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{config: config.NewConfig()}
}

// NewAnalyzerWithConfig creates a new Analyzer instance with custom configuration.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	return &Analyzer{config: cfg}
}

// Analyze selects the representative sample from the root value and
// returns every interface definition reachable from it. rootName is used
// verbatim for the top-level declaration; empty falls back to the
// configured default. The input value is never mutated.
func (a *Analyzer) Analyze(root models.Value, rootName string) models.Result {
	if rootName == "" {
		rootName = config.DefaultRootName
	}

	sample := selectRoot(root)
	if sample.Kind != models.Object {
		// Empty-array, primitive and null roots all degrade to a
		// declaration with zero fields rather than failing.
		return models.Result{Interfaces: []models.InterfaceDef{{Name: rootName}}}
	}

	return models.Result{Interfaces: a.walk(rootName, sample)}
}

// selectRoot picks the representative sample: the first element for a
// non-empty array root, the value itself otherwise.
func selectRoot(v models.Value) models.Value {
	if v.Kind == models.Array && len(v.Items) > 0 {
		return v.Items[0]
	}
	return v
}

// walk emits the declaration for obj under the given name, then visits
// each field in document order, recursing into object-valued samples.
func (a *Analyzer) walk(name string, obj models.Value) []models.InterfaceDef {
	def := models.InterfaceDef{
		Name:   name,
		Fields: make([]models.FieldDef, 0, len(obj.Members)),
	}
	var nested []models.InterfaceDef

	for _, m := range obj.Members {
		field := models.FieldDef{
			JSONKey: m.Key,
			TSName:  a.config.FieldName(m.Key),
		}

		if m.Value.Kind == models.Null {
			// No sample data to infer from.
			field.Optional = true
			field.TSType = "any"
			def.Fields = append(def.Fields, field)
			continue
		}

		field.TSType = a.typeToken(name, m.Key, m.Value)
		def.Fields = append(def.Fields, field)

		// Arrays contribute only their first element; a null sample
		// (bare null or empty array) is never recursed into.
		if sample := sampleValue(m.Value); sample.Kind == models.Object {
			childName := a.interfaceName(name, m.Key)
			if m.Value.Kind == models.Array {
				childName = a.elementName(name, m.Key)
			}
			nested = append(nested, a.walk(childName, sample)...)
		}
	}

	return append([]models.InterfaceDef{def}, nested...)
}

// sampleValue drills through arrays to the value that would be recursed
// into: arrays are replaced by their first element (repeatedly, for
// nested arrays), empty arrays by null.
func sampleValue(v models.Value) models.Value {
	for v.Kind == models.Array {
		if len(v.Items) == 0 {
			return models.Value{Kind: models.Null}
		}
		v = v.Items[0]
	}
	return v
}

// InferType returns the rendered type token for a single field value.
// Array tokens sample the first element; record tokens derive their name
// from the field key, not from the content.
func (a *Analyzer) InferType(fieldKey string, value models.Value) string {
	return a.typeToken("", fieldKey, value)
}

func (a *Analyzer) typeToken(parentName, fieldKey string, value models.Value) string {
	switch value.Kind {
	case models.Bool:
		return "boolean"
	case models.Number:
		return "number"
	case models.String:
		return "string"
	case models.Array:
		if len(value.Items) == 0 {
			return "any[]"
		}
		if elem := value.Items[0]; elem.IsPrimitive() {
			return a.typeToken(parentName, fieldKey, elem) + "[]"
		}
		return a.elementName(parentName, fieldKey) + "[]"
	case models.Object:
		return a.interfaceName(parentName, fieldKey)
	default:
		return "any"
	}
}

// interfaceName derives a declaration name from a field key, optionally
// qualified with the parent interface name.
func (a *Analyzer) interfaceName(parentName, fieldKey string) string {
	name := a.config.InterfaceName(fieldKey)
	if a.config.Naming.ParentPrefix && parentName != "" {
		return parentName + name
	}
	return name
}

// elementName derives the declaration name for an array's element type,
// singularizing the field key so "items" declares "Item".
func (a *Analyzer) elementName(parentName, fieldKey string) string {
	name := a.config.InterfaceName(fieldKey)
	if a.config.Arrays.SingularizeNames {
		name = naming.Singularize(name)
	}
	if a.config.Naming.ParentPrefix && parentName != "" {
		return parentName + name
	}
	return name
}
