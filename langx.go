package langx

import (
	"strconv"
	"strings"
)

// Language is a single Accept-Language entry: a tag name and the quality
// weight the client assigned to it.
//
// Name holds the exact characters the client sent, minus spaces. It is
// never case-folded, canonicalized, or validated; a client that sends
// "en-us" gets "en-us" back.
type Language struct {
	Name    string
	Quality float64
}

// newLanguage parses one comma-delimited segment of an Accept-Language
// header. Spaces must already be stripped from the whole header.
func newLanguage(segment string) Language {
	name, quality, found := strings.Cut(segment, ";")
	if !found {
		return Language{Name: name, Quality: 1.0}
	}
	return Language{Name: name, Quality: qualityWithDefault(quality)}
}

// qualityWithDefault parses a "q=<number>" parameter. Anything that does
// not split into exactly two pieces around "=", or whose number does not
// parse, yields 0.0 rather than an error: malformed weights deprioritize
// a tag instead of rejecting it.
func qualityWithDefault(raw string) float64 {
	parts := strings.Split(raw, "=")
	if len(parts) != 2 {
		return 0.0
	}
	q, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0.0
	}
	return q
}

// Equal reports whether two entries carry the same quality and the same
// name under case-insensitive comparison. The stored names are compared
// with [strings.EqualFold]; neither is modified.
func (l Language) Equal(other Language) bool {
	return l.Quality == other.Quality && strings.EqualFold(l.Name, other.Name)
}
