package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyRoot       = "root"
	KeyIndex      = "index"
	KeyChanged    = "changed"
	KeyCount      = "count"
	KeyFailed     = "failed"
	KeyMode       = "mode"
	KeyEvent      = "event"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Root(p string) slog.Attr         { return slog.String(KeyRoot, p) }
func Index(idx string) slog.Attr      { return slog.String(KeyIndex, idx) }
func Changed(c bool) slog.Attr        { return slog.Bool(KeyChanged, c) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Failed(n int) slog.Attr          { return slog.Int(KeyFailed, n) }
func Mode(m string) slog.Attr         { return slog.String(KeyMode, m) }
func Event(e string) slog.Attr        { return slog.String(KeyEvent, e) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
