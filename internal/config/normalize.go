package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/navbuilder/internal/site"
	"golang.org/x/text/unicode/norm"
)

// Defaults applied to fields left empty.
const (
	DefaultBasePath = "/"
	DefaultTheme    = "default"
)

// NormalizationResult captures adjustments made before validation.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig trims whitespace, applies Unicode NFC to routes and titles
// and fills defaults. It mutates cfg in place.
func NormalizeConfig(cfg *site.SiteConfig) (*NormalizationResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}

	normalizeString("base", &cfg.BasePath, res)
	if cfg.BasePath == "" {
		cfg.BasePath = DefaultBasePath
		res.Warnings = append(res.Warnings, warnDefault("base", DefaultBasePath))
	}
	normalizeString("title", &cfg.Title, res)
	normalizeString("theme", &cfg.Theme, res)
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
		res.Warnings = append(res.Warnings, warnDefault("theme", DefaultTheme))
	}

	cfg.ThemeConfig.Sidebar = normalizeSidebar(cfg.ThemeConfig.Sidebar, "sidebar", res)
	return res, nil
}

func normalizeSidebar(entries site.Sidebar, prefix string, res *NormalizationResult) site.Sidebar {
	for i, entry := range entries {
		loc := fmt.Sprintf("%s[%d]", prefix, i)
		switch e := entry.(type) {
		case site.LinkEntry:
			route := string(e)
			normalizeString(loc, &route, res)
			entries[i] = site.LinkEntry(route)
		case site.GroupEntry:
			normalizeString(loc+".title", &e.Title, res)
			e.Children = normalizeSidebar(e.Children, loc+".children", res)
			entries[i] = e
		}
	}
	return entries
}

func normalizeString(field string, value *string, res *NormalizationResult) {
	out := norm.NFC.String(strings.TrimSpace(*value))
	if out != *value {
		res.Warnings = append(res.Warnings, warnChanged(field, *value, out))
		*value = out
	}
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnDefault(field, def string) string {
	return fmt.Sprintf("%s not set, defaulting to '%s'", field, def)
}
