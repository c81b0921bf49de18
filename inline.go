//
// Mdtree Markdown Processor
// Originally based on http://github.com/russross/blackfriday
// by Russ Ross <russ@russross.com>
//

//
// Functions to parse inline elements.
//

package mdtree

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Inline delimiters, applied in this order after images and links.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "*"
	CodeDelimiter   = "`"
)

var (
	imageRe = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkRe  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// ParseInline splits text into typed spans: images first, then links, then
// bold, italic and code runs. Each stage only looks at the plain spans left
// by the previous one.
func ParseInline(text string) ([]Span, error) {
	spans := []Span{{Type: Plain, Text: text}}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)

	var err error
	for _, d := range []struct {
		delim string
		typ   SpanType
	}{
		{BoldDelimiter, Bold},
		{ItalicDelimiter, Italic},
		{CodeDelimiter, Code},
	} {
		if spans, err = SplitDelimiter(spans, d.delim, d.typ); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("inline: %d spans from %d bytes", len(spans), len(text))
	return spans, nil
}

// SplitImages replaces ![alt](url) markup in plain spans with Image spans.
func SplitImages(spans []Span) []Span {
	return splitMarkup(spans, imageRe, Image)
}

// SplitLinks replaces [text](url) markup in plain spans with Link spans.
func SplitLinks(spans []Span) []Span {
	return splitMarkup(spans, linkRe, Link)
}

// splitMarkup cuts every plain span at the matches of re. A single space
// right after a match is dropped when more markup follows; text after the
// last match is kept whole.
func splitMarkup(spans []Span, re *regexp.Regexp, typ SpanType) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Type != Plain {
			out = append(out, s)
			continue
		}
		matches := re.FindAllStringSubmatchIndex(s.Text, -1)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}

		text := s.Text
		pos := 0
		for i, m := range matches {
			start, end := m[0], m[1]
			if start > pos {
				out = append(out, Span{Type: Plain, Text: text[pos:start]})
			}
			out = append(out, Span{Type: typ, Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]})

			if i == len(matches)-1 {
				if end < len(text) {
					out = append(out, Span{Type: Plain, Text: text[end:]})
				}
				break
			}
			pos = end
			if end < len(text) && text[end] == ' ' {
				pos++
			}
		}
	}
	return out
}

// SplitDelimiter splits the text of every plain span on delim. Parts
// alternate between plain and typ, starting and ending with plain; empty
// parts are kept. An even number of parts means delim is not closed.
func SplitDelimiter(spans []Span, delim string, typ SpanType) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Type != Plain {
			out = append(out, s)
			continue
		}
		parts := strings.Split(s.Text, delim)
		if len(parts)%2 == 0 {
			return nil, errors.Wrapf(ErrUnbalancedDelimiter, "delimiter %q in %q", delim, s.Text)
		}
		for i, part := range parts {
			t := Plain
			if i%2 == 1 {
				t = typ
			}
			out = append(out, Span{Type: t, Text: part})
		}
	}
	return out, nil
}
