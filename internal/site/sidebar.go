package site

import "strconv"

// SidebarEntry is either a LinkEntry or a GroupEntry.
type SidebarEntry interface {
	sidebarEntry()
}

// LinkEntry is a route to a content page. Routes start with "/" and usually
// end with "/" for directory-style routing.
type LinkEntry string

func (LinkEntry) sidebarEntry() {}

// GroupEntry is a titled section of the sidebar. Collapsable groups start
// collapsed; the others are always expanded.
type GroupEntry struct {
	Title       string  `yaml:"title"`
	Collapsable bool    `yaml:"collapsable"`
	Children    Sidebar `yaml:"children"`
}

func (GroupEntry) sidebarEntry() {}

// Group is shorthand for an expanded GroupEntry.
func Group(title string, children ...SidebarEntry) GroupEntry {
	return GroupEntry{Title: title, Children: children}
}

// Sidebar is the ordered navigation tree. Order is rendered order.
type Sidebar []SidebarEntry

// Clone returns a deep copy of the sidebar.
func (s Sidebar) Clone() Sidebar {
	if s == nil {
		return nil
	}
	out := make(Sidebar, len(s))
	for i, entry := range s {
		if g, ok := entry.(GroupEntry); ok {
			g.Children = g.Children.Clone()
			entry = g
		}
		out[i] = entry
	}
	return out
}

// WalkFunc is called for every entry of a sidebar. Returning a non-nil error stops the walk.
type WalkFunc func(entry SidebarEntry, depth int, location string) error

// Walk visits entries depth-first in author order, groups before their children.
func Walk(sidebar Sidebar, fn WalkFunc) error {
	return walk(sidebar, 0, "sidebar", fn)
}

func walk(entries Sidebar, depth int, prefix string, fn WalkFunc) error {
	for i, entry := range entries {
		loc := prefix + "[" + strconv.Itoa(i) + "]"
		if err := fn(entry, depth, loc); err != nil {
			return err
		}
		if g, ok := entry.(GroupEntry); ok {
			if err := walk(g.Children, depth+1, loc+".children", fn); err != nil {
				return err
			}
		}
	}
	return nil
}
