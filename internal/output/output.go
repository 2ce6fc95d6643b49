// Package output provides context-aware output for worklog.
// Stdout is used for primary data output (tables, digests, summaries).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewStyled creates a Printer that downsamples ANSI styles to what w supports.
// Styles are dropped entirely when w is not a terminal or NO_COLOR is set;
// mono keeps bold and faint text but drops colors.
func NewStyled(w io.Writer, environ []string, mono bool) *Printer {
	cw := colorprofile.NewWriter(w, environ)
	if mono && cw.Profile > colorprofile.Ascii {
		cw.Profile = colorprofile.Ascii
	}
	return &Printer{w: cw}
}

// WithPrinter attaches a Printer writing to w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// WithStyledPrinter attaches a Printer created by NewStyled to the context.
func WithStyledPrinter(ctx context.Context, w io.Writer, environ []string, mono bool) context.Context {
	return context.WithValue(ctx, ctxKey{}, NewStyled(w, environ, mono))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
