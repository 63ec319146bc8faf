// Package generator wires the parse -> analyze -> render pipeline behind
// a single entry point.
package generator

import (
	"github.com/mcncl/tsgen/internal/analyzer"
	"github.com/mcncl/tsgen/internal/config"
	"github.com/mcncl/tsgen/internal/parser"
	"github.com/mcncl/tsgen/internal/renderer"
	"github.com/mcncl/tsgen/internal/schema"
)

// Generate parses jsonText and returns the TypeScript interface
// declarations inferred from it. rootInterfaceName is used verbatim for
// the top-level declaration; an empty string selects "RootObject".
// Parse failures are returned unmodified; once parsing succeeds the
// pipeline cannot fail.
func Generate(jsonText, rootInterfaceName string) (string, error) {
	cfg := config.NewConfig()
	if rootInterfaceName != "" {
		cfg.RootName = rootInterfaceName
	}
	return GenerateWithConfig(jsonText, cfg)
}

// GenerateWithConfig runs the pipeline with full configuration control.
func GenerateWithConfig(jsonText string, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	root, err := parser.ParseString(jsonText)
	if err != nil {
		return "", err
	}

	result := analyzer.NewAnalyzerWithConfig(cfg).Analyze(root, cfg.RootName)
	return renderer.NewRenderer().RenderAll(result), nil
}

// GenerateSchema treats the input as a JSON Schema document instead of a
// sample value and renders declarations from its property types.
func GenerateSchema(schemaText string, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	s, err := schema.Parse([]byte(schemaText))
	if err != nil {
		return "", err
	}

	result := schema.ToInterfaces(s, cfg.RootName, cfg)
	return renderer.NewRenderer().RenderAll(result), nil
}
