// Package output carries the stdout writer for rendered references and
// JSON through the command context. Diagnostics go to stderr via the log
// package.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer is the destination for a command's primary output. It is an
// io.Writer so completion scripts and renderers can write to it directly.
type Printer struct {
	io.Writer
}

// WithPrinter returns a context whose Printer writes to w.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{Writer: w})
}

// FromContext returns the context's Printer, or one on os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{Writer: os.Stdout}
}

// Print writes rendered text as is.
func (p *Printer) Print(s string) {
	io.WriteString(p.Writer, s)
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.Writer, format, a...)
}

// Println writes its operands followed by a newline.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.Writer, a...)
}

// JSON writes v as indented JSON. HTML escaping is off so placeholders
// like <branch> stay readable.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
