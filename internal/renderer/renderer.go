package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mcncl/tsgen/internal/models"
)

// Renderer is responsible for turning interface definitions into
// TypeScript declaration text.
type Renderer struct{}

// NewRenderer creates a new Renderer instance
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the declaration text for a single interface. Fields
// are written in document order; null-valued fields render as optional
// with an "any" type.
func (r *Renderer) Render(def models.InterfaceDef) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "export interface %s {\n", def.Name)
	for _, field := range def.Fields {
		if field.Optional {
			fmt.Fprintf(&buf, "  %s?: %s;\n", field.TSName, field.TSType)
		} else {
			fmt.Fprintf(&buf, "  %s: %s;\n", field.TSName, field.TSType)
		}
	}
	buf.WriteString("}")

	return buf.String()
}

// RenderAll renders every declaration in discovery order, separated by a
// single blank line, with no trailing blank line.
func (r *Renderer) RenderAll(result models.Result) string {
	parts := make([]string, 0, len(result.Interfaces))
	for _, def := range result.Interfaces {
		parts = append(parts, r.Render(def))
	}
	return strings.Join(parts, "\n\n")
}
