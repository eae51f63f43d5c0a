package sink

import (
	"errors"
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/theirongolddev/presupuesto/internal/csvenc"
)

// ErrNoClipboard is reported when sharing runs without a clipboard.
var ErrNoClipboard = errors.New("clipboard unavailable")

// Clipboard receives share references.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}

// ShareResult is passed to the Share callback once the clipboard write ends.
type ShareResult struct {
	Name      string
	Reference string
	Copied    bool
	Err       error
}

// Sharer registers blobs and puts their references on the clipboard.
type Sharer struct {
	Registry  *Registry
	Clipboard Clipboard
	Notifier  Notifier
	Logger    *slog.Logger
}

// Share registers blob and returns its reference at once. The clipboard write
// runs detached; when it fails the reference goes to the notifier instead.
// done, if non-nil, is called from that goroutine. There is no cancellation.
func (s *Sharer) Share(name string, blob csvenc.Blob, done func(ShareResult)) string {
	ref := s.Registry.Register(name, blob)
	go func() {
		res := s.copy(name, ref)
		if done != nil {
			done(res)
		}
	}()
	return ref
}

func (s *Sharer) copy(name, ref string) ShareResult {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	res := ShareResult{Name: name, Reference: ref}

	err := ErrNoClipboard
	if s.Clipboard != nil {
		err = s.Clipboard.WriteAll(ref)
	}
	if err != nil {
		logger.Warn("clipboard write failed, showing reference", "file", name, "err", err)
		notify(s.Notifier, Notice{Level: slog.LevelWarn, Message: "🔗 Link generado: " + ref})
		res.Err = err
		return res
	}

	logger.Info("share reference copied", "file", name, "ref", ref)
	notify(s.Notifier, Notice{Level: slog.LevelInfo, Message: "🔗 Link de archivo CSV copiado al portapapeles"})
	res.Copied = true
	return res
}
