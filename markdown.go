//
// Mdtree Markdown Processor
// Originally based on http://github.com/russross/blackfriday
// by Russ Ross <russ@russross.com>
//

//
// Markdown parsing and conversion to an HTML tree.
//

package mdtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shurcooL/sanitized_anchor_name"
	"golang.org/x/text/unicode/norm"
)

// Version string of the package.
const Version = "1.0"

// Extensions is a bitwise or'ed collection of enabled Markdown extensions.
type Extensions int

// These are the supported markdown parsing extensions.
// OR these values together to select multiple extensions.
const (
	NoExtensions     Extensions = 0
	AutoHeadingIDs   Extensions = 1 << iota // Create the heading ID from the text
	NormalizeUnicode                        // NFC normalize the input before parsing
)

// Options configures a conversion. The zero value converts plain Markdown
// with no extensions.
type Options struct {
	Extensions Extensions

	// If set, add this text to the front of each heading ID, to ensure
	// uniqueness.
	HeadingIDPrefix string
	// If set, add this text to the back of each heading ID, to ensure
	// uniqueness.
	HeadingIDSuffix string
}

// converter holds the state of a single document conversion.
type converter struct {
	opts Options

	// Track heading IDs to prevent ID collision in a single document.
	headingIDs map[string]int
}

func newConverter(opts Options) *converter {
	return &converter{
		opts:       opts,
		headingIDs: make(map[string]int),
	}
}

// MarkdownToTree converts document into a tree rooted at a div element,
// one child per block. Any failing block fails the whole conversion.
func MarkdownToTree(document string) (*Node, error) {
	return MarkdownToTreeOptions(document, Options{})
}

// MarkdownToTreeOptions is like MarkdownToTree, with extensions.
func MarkdownToTreeOptions(document string, opts Options) (*Node, error) {
	if opts.Extensions&NormalizeUnicode != 0 {
		document = norm.NFC.String(document)
	}
	c := newConverter(opts)
	blocks := SplitBlocks(document)
	children := make([]*Node, 0, len(blocks))
	for i, block := range blocks {
		n, err := c.block(block)
		if err != nil {
			return nil, errors.Wrapf(err, "block %d", i+1)
		}
		children = append(children, n)
	}
	tracer().Debugf("converted %d blocks", len(children))
	return NewElement("div", children), nil
}

// BlockToNode converts a single block with default options.
func BlockToNode(block string) (*Node, error) {
	return newConverter(Options{}).block(block)
}

func (c *converter) block(block string) (*Node, error) {
	kind := Classify(block)
	tracer().Debugf("block %v: %q", kind, block)
	switch kind.Type {
	case HeadingBlock:
		return c.heading(block, kind.Level)
	case CodeBlock:
		return codeBlock(block)
	case QuoteBlock:
		return quote(block)
	case UnorderedListBlock:
		return unorderedList(block)
	case OrderedListBlock:
		return orderedList(block)
	default:
		return paragraph(block)
	}
}

// textOrChildren builds a leaf holding value when spans is a single plain
// span, and an element with one child per span otherwise.
func textOrChildren(tag, value string, spans []Span, attrs ...Attr) (*Node, error) {
	if len(spans) == 1 && spans[0].Type == Plain {
		return NewLeaf(tag, value, attrs...), nil
	}
	children, err := SpanNodes(spans)
	if err != nil {
		return nil, err
	}
	return NewElement(tag, children, attrs...), nil
}

func (c *converter) heading(block string, level int) (*Node, error) {
	tag := "h" + strconv.Itoa(level)
	text := block[level+1:]
	spans, err := ParseInline(text)
	if err != nil {
		return nil, errors.Wrap(err, tag)
	}
	var attrs []Attr
	if c.opts.Extensions&AutoHeadingIDs != 0 {
		attrs = append(attrs, Attr{"id", c.headingID(spans)})
	}
	// a single span of any type keeps the raw heading text
	if len(spans) == 1 {
		return NewLeaf(tag, text, attrs...), nil
	}
	children, err := SpanNodes(spans)
	if err != nil {
		return nil, err
	}
	return NewElement(tag, children, attrs...), nil
}

func (c *converter) headingID(spans []Span) string {
	var text strings.Builder
	for _, s := range spans {
		text.WriteString(s.Text)
	}
	id := c.ensureUniqueHeadingID(sanitized_anchor_name.Create(text.String()))
	return c.opts.HeadingIDPrefix + id + c.opts.HeadingIDSuffix
}

func (c *converter) ensureUniqueHeadingID(id string) string {
	for count, found := c.headingIDs[id]; found; count, found = c.headingIDs[id] {
		tmp := fmt.Sprintf("%s-%d", id, count+1)

		if _, tmpFound := c.headingIDs[tmp]; !tmpFound {
			c.headingIDs[id] = count + 1
			id = tmp
		} else {
			id = id + "-1"
		}
	}

	if _, found := c.headingIDs[id]; !found {
		c.headingIDs[id] = 0
	}

	return id
}

func paragraph(block string) (*Node, error) {
	spans, err := ParseInline(block)
	if err != nil {
		return nil, errors.Wrap(err, "p")
	}
	return textOrChildren("p", block, spans)
}

// quote keeps the '>' markers for inline parsing; only the single span
// value loses the marker of the first line.
func quote(block string) (*Node, error) {
	value := strings.TrimPrefix(block, ">")
	value = strings.TrimPrefix(value, " ")
	spans, err := ParseInline(block)
	if err != nil {
		return nil, errors.Wrap(err, "blockquote")
	}
	if len(spans) == 1 {
		return NewLeaf("blockquote", value), nil
	}
	children, err := SpanNodes(spans)
	if err != nil {
		return nil, err
	}
	return NewElement("blockquote", children), nil
}

// codeBlock parses the lines between the fences.
func codeBlock(block string) (*Node, error) {
	lines := splitLines(block)
	inner := strings.Join(lines[1:len(lines)-1], "\n")
	spans, err := ParseInline(inner)
	if err != nil {
		return nil, errors.Wrap(err, "code")
	}
	children, err := SpanNodes(spans)
	if err != nil {
		return nil, err
	}
	return NewElement("pre", []*Node{NewElement("code", children)}), nil
}

func unorderedList(block string) (*Node, error) {
	return list("ul", block, func(line string) string {
		if rest := strings.TrimPrefix(line, "* "); rest != line {
			return rest
		}
		return strings.TrimPrefix(line, "- ")
	})
}

func orderedList(block string) (*Node, error) {
	return list("ol", block, func(line string) string {
		if m := orderedItemRe.FindStringIndex(line); m != nil {
			return line[m[1]:]
		}
		return line
	})
}

// list wraps every non-empty line, stripped of its marker, in an li element.
func list(tag, block string, strip func(string) string) (*Node, error) {
	var items []*Node
	for i, line := range splitLines(block) {
		if line == "" {
			continue
		}
		spans, err := ParseInline(strip(line))
		if err != nil {
			return nil, errors.Wrapf(err, "%s item %d", tag, i+1)
		}
		children, err := SpanNodes(spans)
		if err != nil {
			return nil, err
		}
		items = append(items, NewElement("li", children))
	}
	return NewElement(tag, items), nil
}

// ExtractTitle returns the text of the first level 1 heading in document,
// all lines of it, without the marker and trimmed of surrounding space.
// Blocks before it are skipped.
func ExtractTitle(document string) (string, error) {
	for _, block := range SplitBlocks(document) {
		if kind := Classify(block); kind.Type == HeadingBlock && kind.Level == 1 {
			return strings.TrimSpace(block[len("# "):]), nil
		}
	}
	return "", errors.WithStack(ErrMissingTitle)
}
