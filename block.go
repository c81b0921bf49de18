//
// Mdtree Markdown Processor
// Originally based on http://github.com/russross/blackfriday
// by Russ Ross <russ@russross.com>
//

//
// Functions to split and classify block-level elements.
//

package mdtree

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BlockType is the kind of a block.
type BlockType int

const (
	ParagraphBlock BlockType = iota
	HeadingBlock
	CodeBlock
	QuoteBlock
	UnorderedListBlock
	OrderedListBlock
)

var blockTypeNames = []string{
	ParagraphBlock:     "Paragraph",
	HeadingBlock:       "Heading",
	CodeBlock:          "Code",
	QuoteBlock:         "Quote",
	UnorderedListBlock: "UnorderedList",
	OrderedListBlock:   "OrderedList",
}

func (t BlockType) String() string {
	if t >= 0 && int(t) < len(blockTypeNames) {
		return blockTypeNames[t]
	}
	return fmt.Sprintf("BlockType(%d)", int(t))
}

// BlockKind is the classification of a block.
type BlockKind struct {
	Type  BlockType
	Level int // Heading level, 1 to 6
	Start int // Number of the first item of an ordered list
}

func (k BlockKind) String() string {
	switch k.Type {
	case HeadingBlock:
		return fmt.Sprintf("%s(%d)", k.Type, k.Level)
	case OrderedListBlock:
		return fmt.Sprintf("%s(%d)", k.Type, k.Start)
	}
	return k.Type.String()
}

const codeFence = "```"

var (
	blockSeparatorRe = regexp.MustCompile(`\n{2,}`)
	headingRe        = regexp.MustCompile(`^(#{1,6}) `)
	orderedItemRe    = regexp.MustCompile(`^([0-9]+)\. `)
)

// normalizeNewlines turns "\r\n" and lone "\r" line breaks into "\n".
func normalizeNewlines(document string) string {
	if strings.IndexByte(document, '\r') < 0 {
		return document
	}
	document = strings.ReplaceAll(document, "\r\n", "\n")
	return strings.ReplaceAll(document, "\r", "\n")
}

// SplitBlocks cuts document at every run of blank lines. Each block is
// trimmed of surrounding whitespace; empty blocks are dropped.
func SplitBlocks(document string) []string {
	var blocks []string
	for _, chunk := range blockSeparatorRe.Split(normalizeNewlines(document), -1) {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			blocks = append(blocks, chunk)
		}
	}
	return blocks
}

// Classify returns the kind of block. The checks run in a fixed order and
// the first match wins: heading, code, quote, unordered list, ordered list.
// Anything else is a paragraph.
func Classify(block string) BlockKind {
	lines := splitLines(block)
	if len(lines) == 0 {
		return BlockKind{Type: ParagraphBlock}
	}

	// # Heading 1
	// ...
	// ###### Heading 6
	if m := headingRe.FindStringSubmatch(lines[0]); m != nil {
		return BlockKind{Type: HeadingBlock, Level: len(m[1])}
	}

	// ```
	// code
	// ```
	if len(lines) >= 2 &&
		strings.TrimSpace(lines[0]) == codeFence &&
		strings.TrimSpace(lines[len(lines)-1]) == codeFence {
		return BlockKind{Type: CodeBlock}
	}

	// > A big quote I found somewhere
	// > on the web
	if allLines(lines, func(line string) bool {
		return strings.HasPrefix(line, ">")
	}) {
		return BlockKind{Type: QuoteBlock}
	}

	// * Item 1
	// - Item 2
	if allLines(lines, func(line string) bool {
		return strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- ")
	}) {
		return BlockKind{Type: UnorderedListBlock}
	}

	// 1. Item 1
	// 2. Item 2
	if start, ok := orderedListStart(lines); ok {
		return BlockKind{Type: OrderedListBlock, Start: start}
	}

	return BlockKind{Type: ParagraphBlock}
}

// allLines reports whether every non-empty line satisfies prefix.
func allLines(lines []string, prefix func(string) bool) bool {
	for _, line := range lines {
		if line != "" && !prefix(line) {
			return false
		}
	}
	return true
}

// orderedListStart returns the number of the first item when every line
// carries the next consecutive number.
func orderedListStart(lines []string) (int, bool) {
	m := orderedItemRe.FindStringSubmatch(lines[0])
	if m == nil {
		return 0, false
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, strconv.Itoa(start+i)+". ") {
			return 0, false
		}
	}
	return start, true
}
