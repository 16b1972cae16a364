package domain

// DetectNotation returns the first catalog notation whose grammar matches the
// whole of text. It reports false for empty input or when nothing matches.
func DetectNotation(text string) (Notation, bool) {
	s := canonicalize(text)
	if s == "" {
		return 0, false
	}
	for _, g := range catalog {
		if g.pattern.MatchString(s) {
			return g.notation, true
		}
	}
	return 0, false
}
