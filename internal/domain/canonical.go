package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// markReplacer folds the degree, prime and double-prime look-alikes that
// keyboards and clipboards produce into the ASCII marks the grammars expect.
var markReplacer = strings.NewReplacer(
	"º", "°", // masculine ordinal, common on Spanish/Portuguese layouts
	"˚", "°", // ring above
	"′", "'",
	"’", "'",
	"‘", "'",
	"ʹ", "'",
	"´", "'",
	"`", "'",
	"″", `"`,
	"“", `"`,
	"”", `"`,
	"ʺ", `"`,
)

// canonicalize prepares raw text for grammar matching: mark unification, NFKC
// folding (full-width digits, compatibility spaces), uppercase hemisphere
// letters and single-space whitespace. The result is trimmed.
//
// Marks are replaced before NFKC because NFKC decomposes several of them
// (º becomes "o", ″ becomes two primes).
func canonicalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = markReplacer.Replace(s)
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "''", `"`)
	s = strings.ToUpper(s)
	return strings.Join(strings.Fields(s), " ")
}
