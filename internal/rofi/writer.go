package rofi

import (
	"bufio"
	"io"
	"strings"
)

const (
	// Separates an entry's label from its options.
	optionsSep = "\x00"
	// Separates option keys and values.
	fieldSep = "\x1f"
)

// Row is a single menu entry.
type Row struct {
	// Visible label.
	Label string
	// Hidden value passed back through ROFI_INFO when the row is selected. May be empty.
	Info string
	// Icon name or path. May be empty.
	Icon string
}

// Writer emits script mode output. Errors are sticky: once a write fails, later calls are no-ops
// and Flush returns the error.
type Writer struct {
	buf *bufio.Writer
	err error
}

// NewWriter returns a Writer which outputs to w. Call Flush once done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Option sets a mode option, for example "prompt" or "no-custom". Options must be written before
// any rows.
func (w *Writer) Option(key, value string) {
	w.write(optionsSep, sanitize(key), fieldSep, sanitize(value), "\n")
}

// Row adds an entry to the menu.
func (w *Writer) Row(row Row) {
	w.write(sanitize(row.Label))
	var opts []string
	if row.Info != "" {
		opts = append(opts, "info", sanitize(row.Info))
	}
	if row.Icon != "" {
		opts = append(opts, "icon", sanitize(row.Icon))
	}
	if len(opts) > 0 {
		w.write(optionsSep, strings.Join(opts, fieldSep))
	}
	w.write("\n")
}

// Flush writes any buffered output.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.buf.Flush()
	return w.err
}

func (w *Writer) write(strs ...string) {
	for _, s := range strs {
		if w.err != nil {
			return
		}
		_, w.err = w.buf.WriteString(s)
	}
}

var sanitizer = strings.NewReplacer("\n", " ", "\x00", " ", "\x1f", " ")

// sanitize removes characters which would break the line protocol.
func sanitize(s string) string {
	return sanitizer.Replace(s)
}
