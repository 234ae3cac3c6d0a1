package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"git.home.luguber.info/inful/navbuilder/internal/site"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func testLoader(dir string) *Loader {
	return &Loader{EnvFiles: []string{filepath.Join(dir, ".env")}}
}

const validYAML = `base: /docs/
title: Docs
theme: thindark
plugins:
  back-to-top: true
themeConfig:
  author:
    name: Jane
  lastUpdated: true
  sidebar:
    - /
    - title: Guide
      collapsable: true
      children:
        - /guide/
        - /guide/install
`

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "navbuilder.yaml", validYAML)

	loaded, err := testLoader(dir).Load(path)
	require.NoError(t, err)
	require.Equal(t, path, loaded.Path)
	require.Equal(t, "/docs/", loaded.Site.BasePath)
	require.Equal(t, []site.LinkEntry{"/", "/guide/", "/guide/install"}, site.Links(loaded.Site.ThemeConfig.Sidebar))
	require.Len(t, loaded.Report.Warnings, 1)
	require.Empty(t, loaded.Normalization.Warnings)
	require.Empty(t, loaded.EnvFile)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := testLoader(dir).Load(filepath.Join(dir, "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "navbuilder.yaml", "")
	_, err := testLoader(dir).Load(path)
	require.EqualError(t, err, "configuration file is empty")
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "navbuilder.yaml", "base: /\ntitle: x\nthem: typo\n")
	_, err := testLoader(dir).Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "field them not found")
}

func TestLoad_DuplicateRouteReturnsReport(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "navbuilder.yaml", `base: /
title: Docs
themeConfig:
  sidebar:
    - /beginner/tutorial1-window/
    - title: Again
      children:
        - /beginner/tutorial1-window/
`)
	loaded, err := testLoader(dir).Load(path)
	require.ErrorIs(t, err, site.ErrDuplicateRoute)
	require.NotNil(t, loaded)
	require.Nil(t, loaded.Site)
	require.Len(t, loaded.Report.Errors, 1)
	require.Equal(t, "/beginner/tutorial1-window/", loaded.Report.Errors[0].Path)
}

func TestLoad_EnvExpansion(t *testing.T) {
	const key = "NAVBUILDER_TEST_SITE_TITLE"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))

	dir := t.TempDir()
	writeFile(t, dir, ".env", key+"=From Env\n")
	path := writeFile(t, dir, "navbuilder.yaml", "base: /\ntitle: ${"+key+"}\nthemeConfig:\n  sidebar: [/]\n")

	loaded, err := testLoader(dir).Load(path)
	require.NoError(t, err)
	require.Equal(t, "From Env", loaded.Site.Title)
	require.Equal(t, filepath.Join(dir, ".env"), loaded.EnvFile)
}

func TestLoad_EnvDoesNotOverrideProcess(t *testing.T) {
	const key = "NAVBUILDER_TEST_SITE_THEME"
	t.Setenv(key, "process")

	dir := t.TempDir()
	writeFile(t, dir, ".env", key+"=dotenv\n")
	path := writeFile(t, dir, "navbuilder.yaml", "base: /\ntitle: x\ntheme: ${"+key+"}\nthemeConfig:\n  sidebar: [/]\n")

	loaded, err := testLoader(dir).Load(path)
	require.NoError(t, err)
	require.Equal(t, "process", loaded.Site.Theme)
}

func TestInit_WritesLoadableDeclaration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navbuilder.yaml")
	require.NoError(t, Init(path, false))

	loaded, err := testLoader(dir).Load(path)
	require.NoError(t, err)

	want, err := site.Build()
	require.NoError(t, err)
	require.True(t, reflect.DeepEqual(want, loaded.Site))
	require.Empty(t, loaded.Normalization.Warnings)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "navbuilder.yaml", "keep me")

	err := Init(path, false)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConfigExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "keep me", string(data))

	require.NoError(t, Init(path, true))
}

func TestLoad_BareDollarIsLiteral(t *testing.T) {
	t.Setenv("b", "expanded")
	dir := t.TempDir()
	path := writeFile(t, dir, "navbuilder.yaml", "base: /\ntitle: Price $5\ntheme: x\nthemeConfig:\n  sidebar: [/a$b/, /a/]\n")

	loaded, err := testLoader(dir).Load(path)
	require.NoError(t, err)
	require.Equal(t, "Price $5", loaded.Site.Title)
	require.Equal(t, []site.LinkEntry{"/a$b/", "/a/"}, site.Links(loaded.Site.ThemeConfig.Sidebar))
}

func TestExpandEnv(t *testing.T) {
	const key = "NAVBUILDER_TEST_EXPAND"
	t.Setenv(key, "v")
	require.NoError(t, os.Unsetenv("NAVBUILDER_TEST_UNSET"))

	cases := []struct{ in, want string }{
		{"${" + key + "}", "v"},
		{"a${" + key + "}b", "avb"},
		{"$" + key, "$" + key},
		{"${NAVBUILDER_TEST_UNSET}", ""},
		{"${not valid}", "${not valid}"},
		{"$$", "$$"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, expandEnv(tc.in), tc.in)
	}
}
