// Public interface

package mdtree

// Markdown is a convenience function for simple rendering.
// It converts document with no extensions enabled and renders the tree.
func Markdown(document string) (string, error) {
	return MarkdownOptions(document, Options{})
}

// MarkdownOptions converts document with opts and renders the tree.
func MarkdownOptions(document string, opts Options) (string, error) {
	root, err := MarkdownToTreeOptions(document, opts)
	if err != nil {
		return "", err
	}
	return root.Render()
}

// MarkdownPretty converts and renders document like MarkdownOptions, with
// one block level tag per line.
func MarkdownPretty(document string, opts Options) (string, error) {
	out, err := MarkdownOptions(document, opts)
	if err != nil {
		return "", err
	}
	return IndentString(out)
}
