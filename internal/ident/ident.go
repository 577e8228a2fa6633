// Package ident derives Go identifiers from the display names used in
// enumeration declarations.
package ident

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms keep their upper case when a SCREAMING_CASE name is converted.
var initialisms = map[string]struct{}{
	"CPU":  {},
	"GDI":  {},
	"GPU":  {},
	"ID":   {},
	"RGB":  {},
	"RGBA": {},
	"DPI":  {},
}

// GoName converts a display name into the exported Go spelling of it.
// Examples:
//   - "Clamp" -> "Clamp"
//   - "FORCE_BITMAP_REMOTING" -> "ForceBitmapRemoting"
//   - "CPU_READ" -> "CPURead"
//   - "counter-clockwise" -> "CounterClockwise"
//
// Names that cannot be spelled as identifiers (e.g. "2.2") are an error; the
// declaration has to give those an alias.
func GoName(display string) (string, error) {
	tokens := Tokenize(display)
	if len(tokens) == 0 {
		return "", fmt.Errorf("empty name")
	}

	var sb strings.Builder

	for _, tok := range tokens {
		sb.WriteString(titleToken(tok))
	}

	name := sb.String()
	if !IsExported(name) {
		return "", fmt.Errorf("%q cannot be spelled as a Go identifier", display)
	}

	return name, nil
}

// Join builds the constant name for a variant of typeName.
func Join(typeName, suffix string) string {
	return typeName + suffix
}

// IsExported reports whether s is a valid exported Go identifier.
func IsExported(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}

// IsIdentifier reports whether s is a valid Go identifier that is not a keyword.
func IsIdentifier(s string) bool {
	return token.IsIdentifier(s)
}

// Lower returns s with its first rune lowercased, used for unexported
// helpers derived from an exported type name.
func Lower(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}

// Tokenize splits a CamelCase, snake_case or kebab-case name into tokens.
// Examples:
//   - "RoundedRectangle" -> ["Rounded", "Rectangle"]
//   - "GDI_COMPATIBLE" -> ["GDI", "COMPATIBLE"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "Level10" -> ["Level10"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// titleToken upper-cases the first letter of tok. SCREAMING tokens are
// lowered first unless they are initialisms.
func titleToken(tok string) string {
	if !isUpperToken(tok) {
		return cases.Title(language.Und, cases.NoLower).String(tok)
	}

	if _, ok := initialisms[tok]; ok {
		return tok
	}

	return cases.Title(language.Und).String(tok)
}

// isUpperToken reports whether tok has letters and none of them is lowercase.
func isUpperToken(tok string) bool {
	letters := false

	for _, r := range tok {
		if unicode.IsLower(r) {
			return false
		}

		if unicode.IsLetter(r) {
			letters = true
		}
	}

	return letters
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) && !unicode.IsDigit(prevRune) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
