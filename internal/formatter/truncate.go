package formatter

// truncate returns at most max characters of s. Facturae length facets count
// characters, so the cut is rune-based and never splits a UTF-8 sequence.
// Truncation silently drops trailing characters and never fails.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
