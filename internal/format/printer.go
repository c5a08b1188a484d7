package format

import (
	"fmt"
)

// Printer accumulates pretty-printed output. The zero value is ready to use.
type Printer struct {
	buf []byte
}

// WriteString appends raw text.
func (p *Printer) WriteString(s string) {
	p.buf = append(p.buf, s...)
}

// Writef appends a formatted scalar.
func (p *Printer) Writef(format string, args ...any) {
	p.buf = fmt.Appendf(p.buf, format, args...)
}

// String returns the accumulated output.
func (p *Printer) String() string {
	return string(p.buf)
}

// Join prints items separated by sep, rendering each through fn.
func Join[T any](p *Printer, items []T, sep string, fn func(*Printer, T)) {
	for i, item := range items {
		if i > 0 {
			p.WriteString(sep)
		}
		fn(p, item)
	}
}
