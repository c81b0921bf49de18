// Package mdtree is a markdown processor.
//
// Translates plain text with simple formatting rules into a tree of HTML
// nodes, which can then be rendered to a string and spliced into a page.
//
// A document is cut into blocks at blank lines. Each block is classified
// as a heading, a fenced code block, a quote, an unordered or ordered list,
// or a paragraph, and its text is split into inline spans: images, links,
// bold, italic and code. Nested structures are not supported.
//
// The simplest way to invoke mdtree is to call Markdown, which returns the
// rendered HTML. MarkdownToTree returns the tree itself, rooted at a div.
// Conversion is a pure function of its input; documents may be converted
// concurrently.
//
// The site sub-package builds a static site from a directory of markdown
// files, and mdsite is its command-line front end.
package mdtree
