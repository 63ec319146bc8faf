// Package naming implements the casing rules used for interface and
// field names. The rules are deliberately mechanical: text is split on
// hyphens only, and the first character of each segment is uppercased.
// Keys containing other separators (underscores, dots) pass through
// untouched, which is part of the tool's compatibility contract.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToPascalCase uppercases the first character of every hyphen-separated
// segment and concatenates the segments.
func ToPascalCase(text string) string {
	return transform(text, true)
}

// ToCamelCase leaves the first segment untouched and uppercases the
// first character of every following segment.
func ToCamelCase(text string) string {
	return transform(text, false)
}

func transform(text string, upperFirstSegment bool) string {
	var b strings.Builder
	for i, seg := range strings.Split(text, "-") {
		if seg == "" {
			continue
		}
		if i == 0 && !upperFirstSegment {
			b.WriteString(seg)
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(seg[size:])
	}
	return b.String()
}

// Irregular or invariant plurals that the suffix rules below would
// mangle.
var knownSingulars = map[string]string{
	"series":    "series",
	"status":    "status",
	"analysis":  "analysis",
	"species":   "species",
	"news":      "news",
	"children":  "child",
	"people":    "person",
	"men":       "man",
	"women":     "woman",
	"data":      "data",
	"media":     "media",
	"addresses": "address",
}

// Singularize attempts to convert a plural name to a singular one, used
// to name the element type of an array field. It is rule-based, not a
// full inflection library, so unusual plurals pass through unchanged.
func Singularize(plural string) string {
	if singular, ok := knownSingulars[strings.ToLower(plural)]; ok {
		// Preserve original casing if the first letter was capitalized
		if len(plural) > 0 && strings.ToUpper(string(plural[0])) == string(plural[0]) {
			if len(singular) > 0 {
				return strings.ToUpper(string(singular[0])) + singular[1:]
			}
		}
		return singular
	}

	lowerPlural := strings.ToLower(plural)

	if strings.HasSuffix(lowerPlural, "ies") && len(lowerPlural) > 3 {
		return plural[:len(plural)-3] + "y"
	}

	// Avoid removing 's' from words like 'bus', 'class', 'status'
	if strings.HasSuffix(lowerPlural, "ss") ||
		strings.HasSuffix(lowerPlural, "us") ||
		strings.HasSuffix(lowerPlural, "is") {
		return plural
	}

	if strings.HasSuffix(lowerPlural, "s") && len(lowerPlural) > 1 {
		return plural[:len(plural)-1]
	}

	return plural
}
