// Package export serialises a validated site configuration in the field
// layout the site renderer reads.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navbuilder/internal/site"
)

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatJS   Format = "js"
)

type document struct {
	Base        string         `json:"base" yaml:"base"`
	Title       string         `json:"title" yaml:"title"`
	Theme       string         `json:"theme,omitempty" yaml:"theme,omitempty"`
	Plugins     map[string]any `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	ThemeConfig themeConfig    `json:"themeConfig" yaml:"themeConfig"`
}

type themeConfig struct {
	Author            author `json:"author" yaml:"author"`
	DisplayAllHeaders bool   `json:"displayAllHeaders" yaml:"displayAllHeaders"`
	LastUpdated       any    `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
	Sidebar           []any  `json:"sidebar" yaml:"sidebar"`
}

type author struct {
	Name    string `json:"name" yaml:"name"`
	Contact string `json:"contact,omitempty" yaml:"contact,omitempty"`
}

type group struct {
	Title       string `json:"title" yaml:"title"`
	Collapsable bool   `json:"collapsable" yaml:"collapsable"`
	Children    []any  `json:"children" yaml:"children"`
}

func toDocument(cfg *site.SiteConfig) document {
	doc := document{
		Base:  cfg.BasePath,
		Title: cfg.Title,
		Theme: cfg.Theme,
		ThemeConfig: themeConfig{
			Author:            author{Name: cfg.ThemeConfig.Author.Name, Contact: cfg.ThemeConfig.Author.Contact},
			DisplayAllHeaders: cfg.ThemeConfig.DisplayAllHeaders,
			Sidebar:           sidebar(cfg.ThemeConfig.Sidebar),
		},
	}
	if len(cfg.Plugins) > 0 {
		doc.Plugins = make(map[string]any, len(cfg.Plugins))
		for name, p := range cfg.Plugins {
			if p.HasOptions() {
				doc.Plugins[name] = p.Options()
			} else {
				doc.Plugins[name] = true
			}
		}
	}
	switch lu := cfg.ThemeConfig.LastUpdated; {
	case lu.Caption() != "":
		doc.ThemeConfig.LastUpdated = lu.Caption()
	case lu.Enabled():
		doc.ThemeConfig.LastUpdated = true
	}
	return doc
}

func sidebar(entries site.Sidebar) []any {
	out := make([]any, 0, len(entries))
	for _, entry := range entries {
		switch e := entry.(type) {
		case site.LinkEntry:
			out = append(out, string(e))
		case site.GroupEntry:
			out = append(out, group{Title: e.Title, Collapsable: e.Collapsable, Children: sidebar(e.Children)})
		}
	}
	return out
}

// Marshal encodes cfg in the given format. Map keys are sorted, so equal
// configurations always produce identical bytes.
func Marshal(cfg *site.SiteConfig, format Format) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("export: nil configuration")
	}
	doc := toDocument(cfg)
	switch format {
	case FormatJSON:
		return marshalJSON(doc)
	case FormatJS:
		data, err := marshalJSON(doc)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		buf.WriteString("module.exports = ")
		buf.Write(bytes.TrimRight(data, "\n"))
		buf.WriteString(";\n")
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("export: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("export: unsupported format %q", format)
	}
}

func marshalJSON(doc document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("export: encode json: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes cfg to w.
func Write(w io.Writer, cfg *site.SiteConfig, format Format) error {
	data, err := Marshal(cfg, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
