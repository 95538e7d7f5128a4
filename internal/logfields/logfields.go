package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyApp     = "app"
	KeyModule  = "module"
	KeyPath    = "path"
	KeyFile    = "file"
	KeyCount   = "count"
	KeyMarker  = "marker"
	KeySection = "section"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func App(name string) slog.Attr      { return slog.String(KeyApp, name) }
func Module(name string) slog.Attr   { return slog.String(KeyModule, name) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func File(name string) slog.Attr     { return slog.String(KeyFile, name) }
func Count(n int) slog.Attr          { return slog.Int(KeyCount, n) }
func Marker(m string) slog.Attr      { return slog.String(KeyMarker, m) }
func Section(name string) slog.Attr  { return slog.String(KeySection, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
