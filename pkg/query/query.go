package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"arborlog/entities"
)

// newCollator matches the ordering the inventory uses everywhere records are
// listed or exported: numeric runs compare by value ("A-2" before "A-10"),
// case differences are ignored. Collators carry internal buffers, so each
// call gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
}

// Filter keeps records whose TreeName, TreeNumber or Species contains q,
// case-insensitively. An empty q matches every record.
func Filter(records []entities.TreeRecord, q string) []entities.TreeRecord {
	needle := strings.ToLower(q)
	out := make([]entities.TreeRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.TreeName), needle) ||
			strings.Contains(strings.ToLower(r.TreeNumber), needle) ||
			strings.Contains(strings.ToLower(r.Species), needle) {
			out = append(out, r)
		}
	}
	return out
}

// SortByTreeNumber returns a new slice sorted ascending by TreeNumber.
// The sort is stable, so records sharing a tree number keep their
// relative order.
func SortByTreeNumber(records []entities.TreeRecord) []entities.TreeRecord {
	out := make([]entities.TreeRecord, len(records))
	copy(out, records)
	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].TreeNumber, out[j].TreeNumber) < 0
	})
	return out
}

// Compare exposes the tree-number ordering for callers that sort key lists
// themselves.
func Compare(a, b string) int {
	return newCollator().CompareString(a, b)
}
