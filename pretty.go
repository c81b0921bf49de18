package mdtree

// Pretty print rendered HTML

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// blockTags are the elements put on a line of their own.
var blockTags = map[string]bool{
	"div": true, "p": true, "blockquote": true, "pre": true,
	"ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Indent writes src to w with every block level tag on a line of its own,
// indented two spaces per level. Inline tags, text and the content of pre
// elements are copied unchanged.
func Indent(w io.Writer, src []byte) error {
	var b bytes.Buffer
	i := newIndentWriter(&b)
	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return z.Err()
			}
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			_, err := b.WriteTo(w)
			return err
		case html.StartTagToken:
			name, _ := z.TagName()
			i.open(string(name), z.Raw())
		case html.EndTagToken:
			name, _ := z.TagName()
			i.close(string(name), z.Raw())
		default:
			i.Write(z.Raw())
		}
	}
}

// IndentString is Indent for strings.
func IndentString(src string) (string, error) {
	var out strings.Builder
	if err := Indent(&out, []byte(src)); err != nil {
		return "", err
	}
	return out.String(), nil
}

type indentWriter struct {
	b         *bytes.Buffer
	depth     int  // open block elements
	pre       int  // open pre elements
	lastClose bool // last token written closed a block element
}

func newIndentWriter(b *bytes.Buffer) *indentWriter {
	return &indentWriter{b: b}
}

func (i *indentWriter) newline() {
	if i.b.Len() > 0 {
		i.b.WriteByte('\n')
	}
	i.b.WriteString(strings.Repeat("  ", i.depth))
}

func (i *indentWriter) open(name string, raw []byte) {
	if i.pre > 0 || !blockTags[name] {
		i.Write(raw)
		return
	}
	i.newline()
	i.b.Write(raw)
	i.depth++
	if name == "pre" {
		i.pre++
	}
	i.lastClose = false
}

func (i *indentWriter) close(name string, raw []byte) {
	if !blockTags[name] || (i.pre > 0 && name != "pre") {
		i.Write(raw)
		return
	}
	if i.depth > 0 {
		i.depth--
	}
	if name == "pre" && i.pre > 0 {
		i.pre--
	} else if i.lastClose {
		i.newline()
	}
	i.b.Write(raw)
	i.lastClose = true
}

func (i *indentWriter) Write(b []byte) {
	if len(b) == 0 {
		return
	}
	i.b.Write(b)
	i.lastClose = false
}
