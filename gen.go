package hcsc

import "strings"

// outputWriter accumulates generated C source with tracked
// indentation: callers bump the level around a block and the writer
// prefixes every line written at that level with the matching amount
// of whitespace.
type outputWriter struct {
	buf         strings.Builder
	indentLevel int
	space       string
}

func newOutputWriter() *outputWriter {
	return &outputWriter{space: "    "}
}

func (w *outputWriter) indent()   { w.indentLevel++ }
func (w *outputWriter) unindent() { w.indentLevel-- }

func (w *outputWriter) prefix() string {
	return strings.Repeat(w.space, w.indentLevel)
}

// write appends s with no indentation or trailing newline.
func (w *outputWriter) write(s string) { w.buf.WriteString(s) }

// writel appends s followed by a newline, with no indentation.
func (w *outputWriter) writel(s string) {
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

// writei appends the current indent prefix followed by s.
func (w *outputWriter) writei(s string) {
	w.buf.WriteString(w.prefix())
	w.buf.WriteString(s)
}

// writeil appends the current indent prefix, s, and a newline.
func (w *outputWriter) writeil(s string) {
	w.buf.WriteString(w.prefix())
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *outputWriter) String() string { return w.buf.String() }
