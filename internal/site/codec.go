package site

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func decodeError(kind error, node *yaml.Node, format string, args ...any) *ConfigError {
	return newConfigError(kind, fmt.Sprintf(format, args...), "", fmt.Sprintf("line %d", node.Line))
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// UnmarshalYAML accepts a boolean or a caption string.
func (l *LastUpdated) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode {
		return decodeError(ErrInvalidEntry, node, "lastUpdated must be a boolean or a string")
	}
	switch node.ShortTag() {
	case "!!bool":
		var on bool
		if err := node.Decode(&on); err != nil {
			return err
		}
		*l = LastUpdatedEnabled(on)
	case "!!str":
		*l = LastUpdatedLabel(node.Value)
	case "!!null":
		*l = LastUpdated{}
	default:
		return decodeError(ErrInvalidEntry, node, "lastUpdated must be a boolean or a string, got %s", node.ShortTag())
	}
	return nil
}

// MarshalYAML emits the caption when set, the boolean otherwise.
func (l LastUpdated) MarshalYAML() (any, error) {
	if l.label != "" {
		return l.label, nil
	}
	return l.enabled, nil
}

// UnmarshalYAML accepts true (enabled with defaults), null (same) or an options mapping.
func (p *PluginSetting) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		var opts map[string]any
		if err := node.Decode(&opts); err != nil {
			return err
		}
		*p = WithOptions(opts)
		return nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			*p = Enabled()
			return nil
		case "!!bool":
			var on bool
			if err := node.Decode(&on); err != nil {
				return err
			}
			if on {
				*p = Enabled()
				return nil
			}
			return decodeError(ErrInvalidPlugin, node, "plugins cannot be disabled with false, remove the entry instead")
		}
	}
	return decodeError(ErrInvalidPlugin, node, "plugin setting must be true or an options mapping")
}

// MarshalYAML emits true or the options mapping.
func (p PluginSetting) MarshalYAML() (any, error) {
	if p.withOptions {
		return p.options, nil
	}
	return true, nil
}

var groupFields = map[string]bool{"title": true, "collapsable": true, "children": true}

// UnmarshalYAML decodes strings as links and mappings as groups.
func (s *Sidebar) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*s = nil
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return decodeError(ErrInvalidEntry, node, "sidebar must be a sequence")
	}
	out := make(Sidebar, 0, len(node.Content))
	for _, item := range node.Content {
		entry, err := decodeEntry(resolveAlias(item))
		if err != nil {
			return err
		}
		out = append(out, entry)
	}
	*s = out
	return nil
}

func decodeEntry(node *yaml.Node) (SidebarEntry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!str" {
			return nil, decodeError(ErrInvalidEntry, node, "link entry must be a string, got %s", node.ShortTag())
		}
		return LinkEntry(node.Value), nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if key := node.Content[i].Value; !groupFields[key] {
				return nil, decodeError(ErrInvalidEntry, node.Content[i], "unknown group field %q", key)
			}
		}
		var g GroupEntry
		if err := node.Decode(&g); err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, decodeError(ErrInvalidEntry, node, "sidebar entry must be a route string or a group mapping")
	}
}

// MarshalYAML emits links as bare strings and groups as mappings.
func (s Sidebar) MarshalYAML() (any, error) {
	out := make([]any, 0, len(s))
	for _, entry := range s {
		switch e := entry.(type) {
		case LinkEntry:
			out = append(out, string(e))
		case GroupEntry:
			out = append(out, e)
		default:
			return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidEntry, entry)
		}
	}
	return out, nil
}
