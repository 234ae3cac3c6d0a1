package site

import (
	"iter"
	"slices"
)

// FlattenSidebar yields every link depth-first in author order. Group headers
// produce nothing. The sequence can be ranged over any number of times.
func FlattenSidebar(sidebar Sidebar) iter.Seq[LinkEntry] {
	return func(yield func(LinkEntry) bool) {
		flatten(sidebar, yield)
	}
}

func flatten(entries Sidebar, yield func(LinkEntry) bool) bool {
	for _, entry := range entries {
		switch e := entry.(type) {
		case LinkEntry:
			if !yield(e) {
				return false
			}
		case GroupEntry:
			if !flatten(e.Children, yield) {
				return false
			}
		}
	}
	return true
}

// Links collects FlattenSidebar into a slice.
func Links(sidebar Sidebar) []LinkEntry {
	return slices.Collect(FlattenSidebar(sidebar))
}
