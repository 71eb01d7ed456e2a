package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID = "build_id"
	KeyUID     = "uid"
	KeyModule  = "module"
	KeySymbol  = "symbol"
	KeyKind    = "kind"
	KeyStage   = "stage"
	KeyPath    = "path"
	KeyFile    = "file"
	KeyCount   = "count"
	KeyReason  = "reason"
	KeyFormat  = "format"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr  { return slog.String(KeyBuildID, id) }
func UID(uid string) slog.Attr     { return slog.String(KeyUID, uid) }
func Module(m string) slog.Attr    { return slog.String(KeyModule, m) }
func Symbol(name string) slog.Attr { return slog.String(KeySymbol, name) }
func Kind(k string) slog.Attr      { return slog.String(KeyKind, k) }
func Stage(name string) slog.Attr  { return slog.String(KeyStage, name) }
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func File(f string) slog.Attr      { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func Reason(r string) slog.Attr    { return slog.String(KeyReason, r) }
func Format(f string) slog.Attr    { return slog.String(KeyFormat, f) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
