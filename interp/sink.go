package interp

import (
	"fmt"
	"html"
	"io"
)

// Sink receives the finished output of a run. Implementations are
// supplied by the caller; the interpreter only ever calls Render.
type Sink interface {
	Render(text string)
}

// WriterSink renders output as a plain text line.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Render(text string) {
	fmt.Fprintln(s.w, text)
}

// HTMLSink renders output as an escaped container element, for callers
// embedding results in a page.
type HTMLSink struct {
	w   io.Writer
	tag string
}

// NewHTMLSink creates a sink wrapping output in tag. An empty tag
// means "div".
func NewHTMLSink(w io.Writer, tag string) *HTMLSink {
	if tag == "" {
		tag = "div"
	}
	return &HTMLSink{w: w, tag: tag}
}

func (s *HTMLSink) Render(text string) {
	fmt.Fprintf(s.w, "<%s>%s</%s>\n", s.tag, html.EscapeString(text), s.tag)
}
