package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfig     = "config"
	KeyPath       = "path"
	KeyRoute      = "route"
	KeyLocation   = "location"
	KeyTheme      = "theme"
	KeyLinks      = "links"
	KeyGroups     = "groups"
	KeyWarnings   = "warnings"
	KeyFormat     = "format"
	KeyFile       = "file"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Config(path string) slog.Attr     { return slog.String(KeyConfig, path) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Route(r string) slog.Attr         { return slog.String(KeyRoute, r) }
func Location(l string) slog.Attr      { return slog.String(KeyLocation, l) }
func Theme(t string) slog.Attr         { return slog.String(KeyTheme, t) }
func Links(n int) slog.Attr            { return slog.Int(KeyLinks, n) }
func Groups(n int) slog.Attr           { return slog.Int(KeyGroups, n) }
func Warnings(n int) slog.Attr         { return slog.Int(KeyWarnings, n) }
func Format(f string) slog.Attr        { return slog.String(KeyFormat, f) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
