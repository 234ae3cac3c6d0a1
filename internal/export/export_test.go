package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navbuilder/internal/site"
)

func sample() *site.SiteConfig {
	return &site.SiteConfig{
		BasePath: "/docs/",
		Title:    "Docs",
		Theme:    "thindark",
		Plugins: map[string]site.PluginSetting{
			"seo":       site.WithOptions(map[string]any{"twitter": "@x"}),
			"code-copy": site.Enabled(),
		},
		ThemeConfig: site.ThemeConfig{
			Author:      site.Author{Name: "A", Contact: "https://a.example"},
			LastUpdated: site.LastUpdatedLabel("Last Updated"),
			Sidebar: site.Sidebar{
				site.LinkEntry("/"),
				site.GroupEntry{Title: "News", Collapsable: true, Children: site.Sidebar{site.LinkEntry("/news/")}},
			},
		},
	}
}

func TestMarshal_JSON(t *testing.T) {
	data, err := Marshal(sample(), FormatJSON)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"base": "/docs/",
		"title": "Docs",
		"theme": "thindark",
		"plugins": {"code-copy": true, "seo": {"twitter": "@x"}},
		"themeConfig": {
			"author": {"name": "A", "contact": "https://a.example"},
			"displayAllHeaders": false,
			"lastUpdated": "Last Updated",
			"sidebar": ["/", {"title": "News", "collapsable": true, "children": ["/news/"]}]
		}
	}`, string(data))
	require.Less(t, strings.Index(string(data), "code-copy"), strings.Index(string(data), "seo"))
}

func TestMarshal_Deterministic(t *testing.T) {
	first, err := Marshal(sample(), FormatYAML)
	require.NoError(t, err)
	for range 10 {
		again, err := Marshal(sample(), FormatYAML)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestMarshal_YAML(t *testing.T) {
	data, err := Marshal(sample(), FormatYAML)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, "/docs/", decoded["base"])
	plugins := decoded["plugins"].(map[string]any)
	require.Equal(t, true, plugins["code-copy"])
	require.Equal(t, map[string]any{"twitter": "@x"}, plugins["seo"])
}

func TestMarshal_YAMLDecodesBackIntoSiteConfig(t *testing.T) {
	data, err := Marshal(sample(), FormatYAML)
	require.NoError(t, err)

	var cfg site.SiteConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	require.Equal(t, site.Links(sample().ThemeConfig.Sidebar), site.Links(cfg.ThemeConfig.Sidebar))
	require.Equal(t, "Last Updated", cfg.ThemeConfig.LastUpdated.Caption())
}

func TestMarshal_JS(t *testing.T) {
	data, err := Marshal(sample(), FormatJS)
	require.NoError(t, err)
	out := string(data)
	require.True(t, strings.HasPrefix(out, "module.exports = {"))
	require.True(t, strings.HasSuffix(out, "};\n"))

	body := strings.TrimSuffix(strings.TrimPrefix(out, "module.exports = "), ";\n")
	require.True(t, json.Valid([]byte(body)))
}

func TestMarshal_LastUpdatedVariants(t *testing.T) {
	cfg := sample()
	cfg.ThemeConfig.LastUpdated = site.LastUpdatedEnabled(true)
	data, err := Marshal(cfg, FormatJSON)
	require.NoError(t, err)
	require.Contains(t, string(data), `"lastUpdated": true`)

	cfg.ThemeConfig.LastUpdated = site.LastUpdated{}
	data, err = Marshal(cfg, FormatJSON)
	require.NoError(t, err)
	require.NotContains(t, string(data), "lastUpdated")
}

func TestWrite_Errors(t *testing.T) {
	require.Error(t, Write(&bytes.Buffer{}, sample(), Format("toml")))
	require.Error(t, Write(&bytes.Buffer{}, nil, FormatJSON))
}

func TestMarshal_BuiltInDeclaration(t *testing.T) {
	cfg, err := site.Build()
	require.NoError(t, err)
	data, err := Marshal(cfg, FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Base    string         `json:"base"`
		Plugins map[string]any `json:"plugins"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "/learn-wgpu-cn/", decoded.Base)
	require.Equal(t, map[string]any{}, decoded.Plugins["seo"])
	require.Equal(t, true, decoded.Plugins["back-to-top"])
}

func TestMarshal_NestedNonStringOptionKeys(t *testing.T) {
	var cfg site.SiteConfig
	require.NoError(t, yaml.Unmarshal([]byte("base: /\ntitle: T\nplugins:\n  seo:\n    map:\n      1: one\nthemeConfig:\n  sidebar: [/]\n"), &cfg))

	for _, format := range []Format{FormatJSON, FormatJS, FormatYAML} {
		data, err := Marshal(&cfg, format)
		require.NoError(t, err, format)
		require.Contains(t, string(data), "one", format)
	}
	data, err := Marshal(&cfg, FormatJSON)
	require.NoError(t, err)
	require.Contains(t, string(data), `"seo": {`)
	require.Contains(t, string(data), `"1": "one"`)
}
