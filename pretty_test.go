package mdtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	var tests = []string{
		"",
		"",

		"<div><h1>Title</h1><p>Hello <b>world</b></p></div>",
		"<div>\n  <h1>Title</h1>\n  <p>Hello <b>world</b></p>\n</div>\n",

		"<div><ul><li>a</li><li><a href=\"/b\">b</a></li></ul></div>",
		"<div>\n  <ul>\n    <li>a</li>\n    <li><a href=\"/b\">b</a></li>\n  </ul>\n</div>\n",

		"<div><pre><code><p>not a block</p>\nsecond</code></pre><p>x</p></div>",
		"<div>\n  <pre><code><p>not a block</p>\nsecond</code></pre>\n  <p>x</p>\n</div>\n",
	}
	doTestsWithRunner(t, tests, IndentString)
}

func TestMarkdownPretty(t *testing.T) {
	out, err := MarkdownPretty("# Title\n\n1. a\n2. b", Options{})
	assert.NoError(t, err)
	assert.Equal(t, "<div>\n  <h1>Title</h1>\n  <ol>\n    <li>a</li>\n    <li>b</li>\n  </ol>\n</div>\n", out)
}
