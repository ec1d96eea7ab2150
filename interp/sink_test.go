package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterSink(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	NewWriterSink(buf).Render("abcd")
	require.Equal(t, "abcd\n", buf.String())
}

func TestHTMLSinkEscapes(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	NewHTMLSink(buf, "").Render("<b> & co")
	require.Equal(t, "<div>&lt;b&gt; &amp; co</div>\n", buf.String())
}

func TestHTMLSinkCustomTag(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	NewHTMLSink(buf, "pre").Render("x")
	require.Equal(t, "<pre>x</pre>\n", buf.String())
}
