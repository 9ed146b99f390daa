package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// Sort returns the records ordered stable-first, then by title.
// Titles compare by byte order. Ties keep their input order and the input
// slice is left untouched.
func Sort(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		if c := cmp.Compare(a.rank(), b.rank()); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
	return out
}
