package output

import (
	"fmt"
	"io"
)

// lineWriter writes space-separated tokens, wrapping before a token that
// would pass the maximum line length. The first write error is kept and
// later writes are dropped.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &lineWriter{w: w, maxLineLength: maxLineLength}
}

// Write writes a token, preceded by a space or a line break as needed.
func (o *lineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *lineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Printf writes a whole formatted line.
func (o *lineWriter) Printf(format string, args ...interface{}) {
	if o.lineLength > 0 {
		o.NewLine()
	}
	o.print(fmt.Sprintf(format, args...))
	o.NewLine()
}

func (o *lineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}
