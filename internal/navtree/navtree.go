// Package navtree resolves a sidebar into render-ready navigation nodes.
//
// Groups keep their title and collapse state. Links are matched to their
// source page in a content directory and labelled with the page title
// (frontmatter title, then first level-1 heading, then the route itself).
// A missing page is not an error: it is recorded in Tree.Missing so callers
// can warn about dead navigation entries.
package navtree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
	"git.home.luguber.info/inful/navbuilder/internal/markdown"
	"git.home.luguber.info/inful/navbuilder/internal/site"
)

// Kind distinguishes link nodes from group nodes.
type Kind int

const (
	KindLink Kind = iota
	KindGroup
)

// Node is one resolved sidebar entry.
type Node struct {
	Kind        Kind
	Title       string
	Route       string
	URL         string
	Source      string
	Missing     bool
	Collapsable bool
	Children    []*Node
}

// Tree is a resolved sidebar.
type Tree struct {
	BasePath string
	Title    string
	Nodes    []*Node
	Missing  []string
}

// Resolver resolves sidebars against a content directory. An empty
// ContentDir skips page lookup and labels links with their routes.
type Resolver struct {
	ContentDir string
}

// Resolve resolves cfg's sidebar against contentDir.
func Resolve(cfg *site.SiteConfig, contentDir string) (*Tree, error) {
	return (&Resolver{ContentDir: contentDir}).Resolve(cfg)
}

// Resolve builds the navigation tree. Only unreadable or malformed pages fail it.
func (r *Resolver) Resolve(cfg *site.SiteConfig) (*Tree, error) {
	if cfg == nil {
		return nil, errors.New("navtree: nil configuration")
	}
	t := &Tree{BasePath: cfg.BasePath, Title: cfg.Title}
	nodes, err := r.resolve(cfg.BasePath, cfg.ThemeConfig.Sidebar, t)
	if err != nil {
		return nil, err
	}
	t.Nodes = nodes
	return t, nil
}

func (r *Resolver) resolve(base string, entries site.Sidebar, t *Tree) ([]*Node, error) {
	out := make([]*Node, 0, len(entries))
	for _, entry := range entries {
		switch e := entry.(type) {
		case site.LinkEntry:
			n, err := r.resolveLink(base, e, t)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		case site.GroupEntry:
			children, err := r.resolve(base, e.Children, t)
			if err != nil {
				return nil, err
			}
			out = append(out, &Node{Kind: KindGroup, Title: e.Title, Collapsable: e.Collapsable, Children: children})
		}
	}
	return out, nil
}

func (r *Resolver) resolveLink(base string, link site.LinkEntry, t *Tree) (*Node, error) {
	route := string(link)
	n := &Node{Kind: KindLink, Title: route, Route: route, URL: JoinURL(base, route)}
	if r.ContentDir == "" {
		return n, nil
	}

	src, err := r.findSource(route)
	if err != nil {
		t.Missing = append(t.Missing, route)
		n.Missing = true
		slog.Debug("No source page for route", logfields.Route(route), logfields.Error(err))
		return n, nil
	}
	page, err := markdown.ReadPage(src)
	if err != nil {
		return nil, fmt.Errorf("navtree: route %s: %w", route, err)
	}
	n.Source = src
	if title := page.Title(); title != "" {
		n.Title = title
	}
	return n, nil
}

// SourceCandidates lists the files a route may be backed by, in lookup order.
// Directory routes map to README.md then index.md; other routes to <route>.md.
func SourceCandidates(contentDir, route string) []string {
	clean := path.Clean("/" + route)
	rel := filepath.FromSlash(strings.TrimPrefix(clean, "/"))
	if strings.HasSuffix(route, "/") || clean == "/" {
		return []string{
			filepath.Join(contentDir, rel, "README.md"),
			filepath.Join(contentDir, rel, "index.md"),
		}
	}
	rel = strings.TrimSuffix(rel, ".html")
	if strings.HasSuffix(rel, ".md") {
		return []string{filepath.Join(contentDir, rel)}
	}
	return []string{filepath.Join(contentDir, rel+".md")}
}

func (r *Resolver) findSource(route string) (string, error) {
	for _, candidate := range SourceCandidates(r.ContentDir, route) {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fs.ErrNotExist
}

// JoinURL prefixes route with the site base path.
func JoinURL(base, route string) string {
	return strings.TrimSuffix(base, "/") + route
}

// Render prints an indented text view of the tree. Expanded groups are
// marked "[-]", collapsable groups "[+]" and missing pages "(missing)".
func (t *Tree) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", t.Title, t.BasePath); err != nil {
		return err
	}
	return render(w, t.Nodes, 1)
}

func render(w io.Writer, nodes []*Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		var err error
		switch n.Kind {
		case KindGroup:
			marker := "[-]"
			if n.Collapsable {
				marker = "[+]"
			}
			if _, err = fmt.Fprintf(w, "%s%s %s\n", indent, marker, n.Title); err == nil {
				err = render(w, n.Children, depth+1)
			}
		default:
			suffix := ""
			if n.Missing {
				suffix = " (missing)"
			}
			_, err = fmt.Fprintf(w, "%s%s -> %s%s\n", indent, n.Title, n.URL, suffix)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
