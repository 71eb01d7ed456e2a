// Package serialize writes the per-module documents and the table of
// contents at the end of a build.
package serialize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docfxgen/internal/config"
	"git.home.luguber.info/inful/docfxgen/internal/logfields"
	"git.home.luguber.info/inful/docfxgen/internal/metrics"
	"git.home.luguber.info/inful/docfxgen/internal/model"
)

// Writer drains a registry into one document per module plus a TOC document.
type Writer struct {
	dir      string
	format   config.Format
	recorder metrics.Recorder
}

// NewWriter returns a writer targeting dir with the given encoding.
func NewWriter(dir string, format config.Format, recorder metrics.Recorder) *Writer {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Writer{dir: dir, format: format, recorder: recorder}
}

// Write emits every module document in registry insertion order and finishes
// with the TOC. Modules with an empty name are skipped: their symbols never
// resolved an owning module and do not appear in the output.
func (w *Writer) Write(reg *model.Registry) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	ext := w.format.Ext()
	toc := make([]any, 0)
	for _, module := range reg.Modules() {
		if module == "" {
			continue
		}
		items := make([]any, 0, len(reg.Module(module)))
		for _, rec := range reg.Module(module) {
			items = append(items, rec.ToMap())
		}
		doc := map[string]any{
			"items":    items,
			"api_name": []any{},
		}
		name := fmt.Sprintf("%s.%s", module, ext)
		if err := w.writeDoc(filepath.Join(w.dir, name), doc); err != nil {
			return fmt.Errorf("write module document %s: %w", name, err)
		}
		slog.Debug("Wrote module document", logfields.Module(module), logfields.File(name), logfields.Count(len(items)))
		w.recorder.IncModuleWritten()
		toc = append(toc, map[string]any{"name": module, "href": name})
	}

	tocName := "toc." + ext
	if err := w.writeDoc(filepath.Join(w.dir, tocName), toc); err != nil {
		return fmt.Errorf("write toc document: %w", err)
	}
	slog.Info("Wrote table of contents", logfields.File(tocName), logfields.Count(len(toc)))
	return nil
}

func (w *Writer) writeDoc(path string, v any) error {
	var (
		data []byte
		err  error
	)
	switch w.format {
	case config.FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		data, err = encodeYAML(v)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
