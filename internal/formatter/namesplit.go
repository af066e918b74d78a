package formatter

import "strings"

// NameSplitter decomposes a natural person's raw name into given name, first
// surname and second surname. Parts the raw name does not cover are returned
// empty.
//
// The default strategy assumes the Spanish convention and has no notion of
// middle names, compound surnames or non-Latin naming orders. Callers with
// different conventions supply their own splitter via WithNameSplitter.
type NameSplitter func(name string) (given, firstSurname, secondSurname string)

// SplitName is the default NameSplitter: the name is split on single spaces
// into at most three segments, so everything after the second split point
// stays in the second surname, embedded spaces included.
func SplitName(name string) (string, string, string) {
	parts := strings.SplitN(name, " ", 3)

	given := parts[0]
	var first, second string
	if len(parts) > 1 {
		first = parts[1]
	}
	if len(parts) > 2 {
		second = parts[2]
	}
	return given, first, second
}
