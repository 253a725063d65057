// Package clipboard abstracts writing text to the system clipboard so the
// browser and CLI can be tested without one.
package clipboard

import (
	"context"
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
// (for example xclip/xsel/wl-copy missing on Linux).
var ErrUnsupported = errors.New("clipboard not available on this system")

type ctxKey struct{}

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteAll copies text to the system clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// WithWriter returns a context carrying w.
func WithWriter(ctx context.Context, w Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, w)
}

// FromContext returns the Writer stored in ctx, or System if none is set.
func FromContext(ctx context.Context) Writer {
	if w, ok := ctx.Value(ctxKey{}).(Writer); ok {
		return w
	}
	return System{}
}

// Available reports whether the system clipboard can be written.
func Available() bool {
	return !clipboard.Unsupported
}

// Memory is an in-memory clipboard. The zero value is ready to use.
// Set Err to make every write fail.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
	Err    error
}

// WriteAll stores text unless Err is set.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	m.writes++
	return nil
}

// Text returns the last successfully written text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns the number of successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
