package site

import (
	"fmt"
	"maps"
)

// SiteConfig is the complete configuration consumed by the site generator.
type SiteConfig struct {
	BasePath    string                   `yaml:"base"`
	Title       string                   `yaml:"title"`
	Theme       string                   `yaml:"theme,omitempty"`
	Plugins     map[string]PluginSetting `yaml:"plugins,omitempty"`
	ThemeConfig ThemeConfig              `yaml:"themeConfig"`
}

// ThemeConfig holds the settings read by the rendering theme.
type ThemeConfig struct {
	Author            Author      `yaml:"author"`
	DisplayAllHeaders bool        `yaml:"displayAllHeaders"`
	LastUpdated       LastUpdated `yaml:"lastUpdated,omitempty"`
	Sidebar           Sidebar     `yaml:"sidebar"`
}

// Author is static attribution shown by the theme.
type Author struct {
	Name    string `yaml:"name"`
	Contact string `yaml:"contact,omitempty"`
}

// LastUpdated is either a boolean switch or a caption label.
// The zero value is disabled.
type LastUpdated struct {
	enabled bool
	label   string
}

// LastUpdatedLabel enables the last-modified label with the given caption.
// An empty caption disables it.
func LastUpdatedLabel(caption string) LastUpdated {
	return LastUpdated{enabled: caption != "", label: caption}
}

// LastUpdatedEnabled switches the label on or off using the theme's default caption.
func LastUpdatedEnabled(on bool) LastUpdated {
	return LastUpdated{enabled: on}
}

// Enabled reports whether the renderer should show a last-modified label.
func (l LastUpdated) Enabled() bool { return l.enabled }

// Caption returns the configured caption, empty when the theme default applies.
func (l LastUpdated) Caption() string { return l.label }

// IsZero lets yaml omit a disabled value.
func (l LastUpdated) IsZero() bool { return !l.enabled && l.label == "" }

// PluginSetting is the tagged union {Enabled, EnabledWithOptions(options)}.
type PluginSetting struct {
	options     map[string]any
	withOptions bool
}

// Enabled turns a plugin on with its defaults.
func Enabled() PluginSetting { return PluginSetting{} }

// WithOptions turns a plugin on with an options object. A nil map is treated as empty.
func WithOptions(options map[string]any) PluginSetting {
	if options == nil {
		options = map[string]any{}
	}
	return PluginSetting{options: cloneMap(options), withOptions: true}
}

// HasOptions reports whether the plugin carries an options object.
func (p PluginSetting) HasOptions() bool { return p.withOptions }

// Options returns a copy of the plugin options, nil for Enabled.
func (p PluginSetting) Options() map[string]any {
	if !p.withOptions {
		return nil
	}
	return cloneMap(p.options)
}

// Clone returns a deep copy of the configuration.
func (c *SiteConfig) Clone() *SiteConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.Plugins != nil {
		out.Plugins = make(map[string]PluginSetting, len(c.Plugins))
		for name, setting := range c.Plugins {
			if setting.withOptions {
				setting = WithOptions(setting.options)
			}
			out.Plugins[name] = setting
		}
	}
	out.ThemeConfig.Sidebar = c.ThemeConfig.Sidebar.Clone()
	return &out
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	maps.Copy(out, in)
	for k, v := range out {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies option values. Maps with non-string keys, which
// yaml.v3 produces for nested mappings such as {1: one}, get their keys
// stringified so options always encode as JSON objects.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = cloneValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
