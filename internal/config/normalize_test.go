package config

import (
	"testing"

	"git.home.luguber.info/inful/navbuilder/internal/site"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConfig_TrimAndNFC(t *testing.T) {
	cfg := &site.SiteConfig{
		BasePath: " /docs/ ",
		Title:    "Cafe\u0301",
		Theme:    "thindark",
		ThemeConfig: site.ThemeConfig{Sidebar: site.Sidebar{
			site.LinkEntry(" /a/"),
			site.GroupEntry{Title: " Guide ", Children: site.Sidebar{site.LinkEntry("/re\u0301sume\u0301/")}},
		}},
	}

	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, "/docs/", cfg.BasePath)
	require.Equal(t, "Caf\u00e9", cfg.Title)
	require.Equal(t, site.Sidebar{
		site.LinkEntry("/a/"),
		site.GroupEntry{Title: "Guide", Children: site.Sidebar{site.LinkEntry("/r\u00e9sum\u00e9/")}},
	}, cfg.ThemeConfig.Sidebar)
	require.Len(t, res.Warnings, 5)
	require.Contains(t, res.Warnings, "normalized sidebar[1].title from ' Guide ' to 'Guide'")
}

func TestNormalizeConfig_Defaults(t *testing.T) {
	cfg := &site.SiteConfig{Title: "Docs"}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultBasePath, cfg.BasePath)
	require.Equal(t, DefaultTheme, cfg.Theme)
	require.Equal(t, []string{
		"base not set, defaulting to '/'",
		"theme not set, defaulting to 'default'",
	}, res.Warnings)
}

func TestNormalizeConfig_NFCMakesDuplicatesVisible(t *testing.T) {
	cfg := &site.SiteConfig{
		BasePath: "/",
		Title:    "Docs",
		ThemeConfig: site.ThemeConfig{Sidebar: site.Sidebar{
			site.LinkEntry("/cafe\u0301/"),
			site.LinkEntry("/caf\u00e9/"),
		}},
	}
	_, err := NormalizeConfig(cfg)
	require.NoError(t, err)

	_, err = site.NewBuilder(site.Static(cfg)).Build()
	require.ErrorIs(t, err, site.ErrDuplicateRoute)
}

func TestNormalizeConfig_Nil(t *testing.T) {
	_, err := NormalizeConfig(nil)
	require.Error(t, err)
}
