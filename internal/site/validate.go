package site

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal finding. Warnings never fail a build.
type Warning struct {
	Message  string
	Path     string
	Location string
}

func (w Warning) String() string {
	s := w.Message
	if w.Path != "" {
		s += fmt.Sprintf(" (path %q)", w.Path)
	}
	if w.Location != "" {
		s += " at " + w.Location
	}
	return s
}

// Report is the full result of validating a configuration.
type Report struct {
	Errors   []*ConfigError
	Warnings []Warning
	Links    int
	Groups   int
}

// OK reports whether the configuration has no errors.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// Err returns the first error in depth-first author order, or nil.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Validate inspects the whole configuration and collects every error and warning.
func Validate(cfg *SiteConfig) *Report {
	r := &Report{}
	if cfg == nil {
		r.Errors = append(r.Errors, newConfigError(ErrNoConfiguration, "configuration is nil", "", ""))
		return r
	}

	if !strings.HasPrefix(cfg.BasePath, "/") || !strings.HasSuffix(cfg.BasePath, "/") {
		r.Errors = append(r.Errors, newConfigError(ErrInvalidBasePath,
			"base path must start and end with \"/\"", cfg.BasePath, "base"))
	}
	if strings.TrimSpace(cfg.Title) == "" {
		r.Warnings = append(r.Warnings, Warning{Message: "site title is empty", Location: "title"})
	}

	seen := make(map[LinkEntry]string)
	_ = Walk(cfg.ThemeConfig.Sidebar, func(entry SidebarEntry, _ int, loc string) error {
		switch e := entry.(type) {
		case LinkEntry:
			r.Links++
			checkLink(r, e, loc, seen)
		case GroupEntry:
			r.Groups++
			if strings.TrimSpace(e.Title) == "" {
				r.Errors = append(r.Errors, newConfigError(ErrEmptyGroupTitle,
					"group title must not be empty", "", loc))
			}
			if len(e.Children) == 0 {
				r.Warnings = append(r.Warnings, Warning{Message: fmt.Sprintf("group %q has no children", e.Title), Location: loc})
			}
		case nil:
			r.Errors = append(r.Errors, newConfigError(ErrInvalidEntry, "sidebar entry is nil", "", loc))
		default:
			r.Errors = append(r.Errors, newConfigError(ErrInvalidEntry,
				fmt.Sprintf("unsupported sidebar entry %T", entry), "", loc))
		}
		return nil
	})
	return r
}

func checkLink(r *Report, link LinkEntry, loc string, seen map[LinkEntry]string) {
	route := string(link)
	if !strings.HasPrefix(route, "/") {
		r.Errors = append(r.Errors, newConfigError(ErrMalformedRoute,
			"route must start with \"/\"", route, loc))
		return
	}
	if first, dup := seen[link]; dup {
		r.Errors = append(r.Errors, newConfigError(ErrDuplicateRoute,
			"route already listed at "+first, route, loc))
		return
	}
	seen[link] = loc
	if !strings.HasSuffix(route, "/") {
		r.Warnings = append(r.Warnings, Warning{Message: "route does not end with \"/\"", Path: route, Location: loc})
	}
}
