// Package normalize canonicalizes free-text identifiers before matching.
//
// Every lookup key in the reference indexes goes through exactly one of these
// functions; raw values are never compared directly.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonDigitRE     = regexp.MustCompile(`\D`)
	nonVehicleRE   = regexp.MustCompile(`[^A-Z0-9]`)
	whitespaceRE   = regexp.MustCompile(`\s+`)
	stripDiacritic = transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
)

// TaxID strips every non-digit character. Empty output means "no key" and
// must never be used as a match key.
func TaxID(s string) string {
	return nonDigitRE.ReplaceAllString(s, "")
}

// Name decomposes to NFD, drops combining marks, collapses whitespace runs
// to a single space, trims and lower-cases. Two names denote the same
// identity when their normalized forms are equal, or one is a prefix or
// substring of the other (the fuzzy fallback in the reconciler).
func Name(s string) string {
	out, _, err := transform.String(stripDiacritic, s)
	if err != nil {
		out = s
	}
	out = whitespaceRE.ReplaceAllString(out, " ")
	return strings.ToLower(strings.TrimSpace(out))
}

// VehicleKey upper-cases and strips every character outside [A-Z0-9].
// Used for chassis, plate and renavam keys alike.
func VehicleKey(s string) string {
	return nonVehicleRE.ReplaceAllString(strings.ToUpper(s), "")
}
