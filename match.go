package langx

import "golang.org/x/text/language"

// Preferred returns the single most-preferred tag from the header, or an
// empty string when the header yields nothing usable. It is shorthand for
// the first element of [Parse].
func Preferred(raw string) string {
	names := Parse(raw)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// Match resolves the best entry of a BCP 47 catalog for the header using
// [golang.org/x/text/language] matching, and returns that entry in the
// caller's own spelling. Unlike [Intersection], Match understands tag
// relationships: a client asking for "en-GB" can match a catalog that only
// offers "en-US".
//
// Match returns fallback when the catalog is empty, when any catalog entry
// is not a well-formed BCP 47 tag, when the header cannot be parsed, or
// when no catalog entry is related to anything the client asked for.
func Match(raw string, supported []string, fallback string) string {
	if len(supported) == 0 {
		return fallback
	}

	catalog := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			return fallback
		}
		catalog = append(catalog, tag)
	}

	desired, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	_, index, confidence := language.NewMatcher(catalog).Match(desired...)
	if confidence == language.No {
		return fallback
	}
	return supported[index]
}
