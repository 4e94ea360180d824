package langx

import "slices"

// Intersection parses the header and keeps only the tags present in
// supported, in the user's preference order. Matching against supported is
// an exact string comparison: entries must use the same casing clients
// send (e.g. "en-US", not "en-us").
func Intersection(raw string, supported []string) []string {
	var common []string
	for _, name := range Parse(raw) {
		if slices.Contains(supported, name) {
			common = append(common, name)
		}
	}
	return common
}

// IntersectionOrdered is [Intersection] using binary search, for callers
// that keep their supported list sorted. supported MUST be in ascending
// order; the precondition is not checked, and results are undefined when
// it does not hold.
func IntersectionOrdered(raw string, supported []string) []string {
	var common []string
	for _, name := range Parse(raw) {
		if _, found := slices.BinarySearch(supported, name); found {
			common = append(common, name)
		}
	}
	return common
}

// IntersectionWithQuality is [Intersection] keeping the quality weight of
// each matched tag.
func IntersectionWithQuality(raw string, supported []string) []Language {
	var common []Language
	for _, l := range ParseWithQuality(raw) {
		if slices.Contains(supported, l.Name) {
			common = append(common, l)
		}
	}
	return common
}

// IntersectionOrderedWithQuality is [IntersectionOrdered] keeping the
// quality weight of each matched tag. supported MUST be in ascending order.
func IntersectionOrderedWithQuality(raw string, supported []string) []Language {
	var common []Language
	for _, l := range ParseWithQuality(raw) {
		if _, found := slices.BinarySearch(supported, l.Name); found {
			common = append(common, l)
		}
	}
	return common
}
