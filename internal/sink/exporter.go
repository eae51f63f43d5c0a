package sink

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/theirongolddev/presupuesto/internal/csvenc"
	"github.com/theirongolddev/presupuesto/internal/report"
)

// FileWriter saves a named blob and returns where it went.
type FileWriter interface {
	Export(name string, blob csvenc.Blob) (string, error)
}

// FileExporter writes blobs into Dir.
type FileExporter struct {
	Dir string
}

// Export writes blob to Dir/name through a temp file and rename, so a reader
// never sees a partial file.
func (f FileExporter) Export(name string, blob csvenc.Blob) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("export %q: invalid file name", name)
	}
	dir := f.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(blob.Data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return path, nil
}

// Outcome reports what an export did.
type Outcome struct {
	Name string
	Path string
	// Saved is false when the file could not be written and the CSV text was
	// handed to the notifier instead.
	Saved bool
	// Empty is true when there was nothing to export. No file is written.
	Empty bool
	Err   error
}

// Exporter saves exports and falls back to the notifier when saving fails.
type Exporter struct {
	Files    FileWriter
	Notifier Notifier
	Logger   *slog.Logger
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Export saves one blob.
func (e *Exporter) Export(name string, blob csvenc.Blob) Outcome {
	out := Outcome{Name: name}
	path, err := e.Files.Export(name, blob)
	if err != nil {
		e.logger().Warn("export failed, showing data instead", "file", name, "err", err)
		notify(e.Notifier, Notice{
			Level:   slog.LevelWarn,
			Message: fmt.Sprintf("No se pudo guardar %s; contenido:", name),
			Body:    blob.String(),
		})
		out.Err = err
		return out
	}
	e.logger().Info("exported", "file", path, "bytes", len(blob.Data))
	notify(e.Notifier, Notice{Level: slog.LevelInfo, Message: "Exportado: " + path})
	out.Path, out.Saved = path, true
	return out
}

// ExportReport encodes and saves a shaped export. An empty export is reported
// as a warning and writes nothing.
func (e *Exporter) ExportReport(ex report.Export) Outcome {
	blob, err := ex.Encode()
	if errors.Is(err, csvenc.ErrNothingToEncode) {
		e.logger().Warn("nothing to export", "kind", ex.Kind)
		notify(e.Notifier, Notice{Level: slog.LevelWarn, Message: "No hay datos para exportar"})
		return Outcome{Name: ex.Filename, Empty: true, Err: err}
	}
	if err != nil {
		e.logger().Error("encoding export", "kind", ex.Kind, "err", err)
		return Outcome{Name: ex.Filename, Err: err}
	}
	return e.Export(ex.Filename, blob)
}
