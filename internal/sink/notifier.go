// Package sink delivers encoded exports: files on disk, shared references on
// the clipboard, and workbooks. Failures degrade to showing the data through a
// Notifier and are never fatal.
package sink

import (
	"fmt"
	"io"
	"log/slog"
)

// Notice is a user-facing message with an optional body, such as CSV text or
// a share reference that could not be delivered any other way.
type Notice struct {
	Level   slog.Level
	Message string
	Body    string
}

// Notifier presents notices to the user.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// WriterNotifier prints notices to W, body after message.
type WriterNotifier struct {
	W io.Writer
}

func (w WriterNotifier) Notify(n Notice) {
	_, _ = fmt.Fprintln(w.W, n.Message)
	if n.Body != "" {
		_, _ = fmt.Fprintln(w.W, n.Body)
	}
}

func notify(n Notifier, notice Notice) {
	if n != nil {
		n.Notify(notice)
	}
}
