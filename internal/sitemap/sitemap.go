// Package sitemap turns the flattened sidebar into a site map.
package sitemap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/navbuilder/internal/navtree"
	"git.home.luguber.info/inful/navbuilder/internal/site"
)

// Format selects the site map rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatXML      Format = "xml"
)

// ErrHostnameRequired is returned for XML output without a hostname.
var ErrHostnameRequired = errors.New("sitemap: xml output requires an absolute hostname")

// Options tunes site map generation.
type Options struct {
	// Hostname makes URLs absolute, e.g. "https://sotrh.github.io".
	Hostname string
	// Label returns the display label for a route. Routes are used when nil
	// or when it returns an empty string.
	Label func(route string) string
}

// Entry is one page of the site map, in sidebar order.
type Entry struct {
	Route string
	URL   string
}

// Generate lists every sidebar link with its public URL.
func Generate(cfg *site.SiteConfig, opts Options) ([]Entry, error) {
	prefix, err := hostPrefix(opts.Hostname)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for link := range site.FlattenSidebar(cfg.ThemeConfig.Sidebar) {
		route := string(link)
		entries = append(entries, Entry{Route: route, URL: prefix + navtree.JoinURL(cfg.BasePath, route)})
	}
	return entries, nil
}

func hostPrefix(hostname string) (string, error) {
	if hostname == "" {
		return "", nil
	}
	u, err := url.Parse(hostname)
	if err != nil {
		return "", fmt.Errorf("sitemap: invalid hostname %q: %w", hostname, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("sitemap: hostname %q must be an http(s) URL", hostname)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Write renders the site map of cfg in the given format.
func Write(w io.Writer, cfg *site.SiteConfig, format Format, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, cfg, opts)
	case FormatMarkdown:
		return writeMarkdown(w, cfg, opts)
	case FormatXML:
		if opts.Hostname == "" {
			return ErrHostnameRequired
		}
		return writeXML(w, cfg, opts)
	default:
		return fmt.Errorf("sitemap: unsupported format %q", format)
	}
}

func writeText(w io.Writer, cfg *site.SiteConfig, opts Options) error {
	entries, err := Generate(cfg, opts)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.URL); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdown(w io.Writer, cfg *site.SiteConfig, opts Options) error {
	prefix, err := hostPrefix(opts.Hostname)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# %s\n\n", markdownEscaper.Replace(cfg.Title)); err != nil {
		return err
	}
	return site.Walk(cfg.ThemeConfig.Sidebar, func(entry site.SidebarEntry, depth int, _ string) error {
		indent := strings.Repeat("  ", depth)
		var err error
		switch e := entry.(type) {
		case site.LinkEntry:
			route := string(e)
			label := route
			if opts.Label != nil {
				if l := opts.Label(route); l != "" {
					label = l
				}
			}
			_, err = fmt.Fprintf(w, "%s- [%s](%s)\n", indent, markdownEscaper.Replace(label), prefix+navtree.JoinURL(cfg.BasePath, route))
		case site.GroupEntry:
			_, err = fmt.Fprintf(w, "%s- **%s**\n", indent, markdownEscaper.Replace(e.Title))
		}
		return err
	})
}

// markdownEscaper backslash-escapes the inline metacharacters that would
// break link text or emphasis.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
)

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []urlLoc `xml:"url"`
}

type urlLoc struct {
	Loc string `xml:"loc"`
}

func writeXML(w io.Writer, cfg *site.SiteConfig, opts Options) error {
	entries, err := Generate(cfg, opts)
	if err != nil {
		return err
	}
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlLoc{Loc: e.URL})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
