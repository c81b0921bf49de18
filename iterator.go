package mdtree

import "strings"

// linespan implements a minimal line iterator over '\n' delimited content
type linespan struct{ begin, end int }

// next updates begin and end to point to the next line, end includes the
// terminating '\n' if there is one
func (sc *linespan) next(content string) bool {
	sc.begin = sc.end
	if sc.begin >= len(content) {
		return false
	}

	off := strings.IndexByte(content[sc.begin:], '\n')
	if off >= 0 {
		sc.end = sc.begin + off + 1
		return true
	}

	sc.end = len(content)
	return true
}

// line returns the current line without its '\n'
func (sc *linespan) line(content string) string {
	return strings.TrimSuffix(content[sc.begin:sc.end], "\n")
}

// splitLines returns the lines of content, a final '\n' does not start an
// empty line
func splitLines(content string) []string {
	var lines []string
	var sc linespan
	for sc.next(content) {
		lines = append(lines, sc.line(content))
	}
	return lines
}
