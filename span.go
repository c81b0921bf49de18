package mdtree

import (
	"fmt"

	"github.com/pkg/errors"
)

// SpanType is the kind of an inline span.
type SpanType int

const (
	Plain SpanType = iota
	Bold
	Italic
	Code
	Link
	Image
)

var spanTypeNames = []string{
	Plain:  "Plain",
	Bold:   "Bold",
	Italic: "Italic",
	Code:   "Code",
	Link:   "Link",
	Image:  "Image",
}

func (t SpanType) String() string {
	if t >= 0 && int(t) < len(spanTypeNames) {
		return spanTypeNames[t]
	}
	return fmt.Sprintf("SpanType(%d)", int(t))
}

// Span is a typed run of inline text. URL is only set for links and images.
// Spans are values and compare with ==.
type Span struct {
	Type SpanType
	Text string
	URL  string
}

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("%s(%q, %q)", s.Type, s.Text, s.URL)
	}
	return fmt.Sprintf("%s(%q)", s.Type, s.Text)
}

// SpanNode maps an inline span to its HTML leaf.
func SpanNode(s Span) (*Node, error) {
	switch s.Type {
	case Plain:
		return NewLeaf("", s.Text), nil
	case Bold:
		return NewLeaf("b", s.Text), nil
	case Italic:
		return NewLeaf("i", s.Text), nil
	case Code:
		return NewLeaf("code", s.Text), nil
	case Link:
		return NewLeaf("a", s.Text, Attr{"href", s.URL}), nil
	case Image:
		return NewLeaf("img", s.Text, Attr{"src", s.URL}, Attr{"alt", s.Text}), nil
	}
	return nil, errors.Wrapf(ErrUnknownSpanType, "%v", s.Type)
}

// SpanNodes maps every span in order.
func SpanNodes(spans []Span) ([]*Node, error) {
	nodes := make([]*Node, 0, len(spans))
	for _, s := range spans {
		n, err := SpanNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
