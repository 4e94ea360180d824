package langx

import (
	"cmp"
	"slices"
	"strings"
)

// Parse parses a raw Accept-Language header value into an ordered list of
// tag names, most preferred first. Entries with equal quality keep the
// order the client sent them in, so the result matches
// window.navigator.languages in supported browsers.
//
// Parse never fails. Malformed input degrades instead: an unparsable
// quality weight demotes its tag to 0.0, and entries with no name are
// dropped. An empty header yields an empty list.
func Parse(raw string) []string {
	languages := parseLanguages(raw)
	names := make([]string, 0, len(languages))
	for _, l := range languages {
		if l.Name == "" {
			continue
		}
		names = append(names, l.Name)
	}
	return names
}

// ParseWithQuality is [Parse] keeping the quality weight of each tag.
func ParseWithQuality(raw string) []Language {
	languages := parseLanguages(raw)
	kept := make([]Language, 0, len(languages))
	for _, l := range languages {
		if l.Name == "" {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// parseLanguages strips every space from the header, splits it on commas,
// and orders the entries by descending quality. The sort must be stable:
// equal qualities compare as equal, so the client's order is the tiebreaker.
func parseLanguages(raw string) []Language {
	stripped := strings.ReplaceAll(raw, " ", "")
	segments := strings.Split(stripped, ",")

	languages := make([]Language, 0, len(segments))
	for _, segment := range segments {
		languages = append(languages, newLanguage(segment))
	}

	slices.SortStableFunc(languages, func(a, b Language) int {
		return cmp.Compare(b.Quality, a.Quality)
	})

	return languages
}
