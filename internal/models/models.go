package models

import "encoding/json"

// Kind identifies which JSON kind a Value holds. It is decided once, at
// parse time, so later stages dispatch on it instead of inspecting
// runtime types.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// Value is a parsed JSON value. Only the field matching Kind is
// meaningful. Values are never mutated after parsing.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  json.Number
	Str     string
	Items   []Value
	Members []Member
}

// Member is one key/value pair of a JSON object. Members keep the order
// they appeared in the document, which is observable in the output.
type Member struct {
	Key   string
	Value Value
}

// IsPrimitive reports whether the value is a string, number or boolean.
// Null is not a primitive here; it gets the optional-field treatment.
func (v Value) IsPrimitive() bool {
	switch v.Kind {
	case Bool, Number, String:
		return true
	}
	return false
}

// FieldDef is a single rendered field of an interface declaration.
type FieldDef struct {
	// JSONKey is the raw key as it appeared in the document.
	JSONKey string
	// TSName is the cased TypeScript property name.
	TSName string
	// TSType is the rendered type token, e.g. "string", "Item[]", "any".
	TSType string
	// Optional marks null-valued sample fields, rendered as "name?: any".
	Optional bool
}

// InterfaceDef is one named interface declaration with its fields in
// document order.
type InterfaceDef struct {
	Name   string
	Fields []FieldDef
}

// Result holds every interface discovered during one analysis, in
// discovery (pre-order) order.
type Result struct {
	Interfaces []InterfaceDef
}
