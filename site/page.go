package site

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/russross/mdtree"
)

// Page is a generated page.
type Page struct {
	Title   string
	Content string   // rendered markdown tree
	Images  []string // img sources in document order
	HTML    []byte   // template with placeholders replaced
}

// GeneratePage converts markdown and fills tmpl with its title and content.
// A document without a level 1 heading fails with mdtree.ErrMissingTitle.
func GeneratePage(markdown []byte, tmpl *Template, opts mdtree.Options) (*Page, error) {
	document := string(markdown)
	if opts.Extensions&mdtree.NormalizeUnicode != 0 {
		document = norm.NFC.String(document)
	}
	title, err := mdtree.ExtractTitle(document)
	if err != nil {
		return nil, err
	}
	root, err := mdtree.MarkdownToTreeOptions(document, opts)
	if err != nil {
		return nil, err
	}
	content, err := root.Render()
	if err != nil {
		return nil, errors.Wrap(err, "render")
	}
	return &Page{
		Title:   title,
		Content: content,
		Images:  imageSources(root),
		HTML:    []byte(tmpl.Execute(title, content)),
	}, nil
}

func imageSources(root *mdtree.Node) []string {
	var srcs []string
	root.Walk(func(n *mdtree.Node, entering bool) mdtree.WalkStatus {
		if entering && n.Tag() == "img" {
			if src, ok := n.Attrs().Get("src"); ok {
				srcs = append(srcs, src)
			}
		}
		return mdtree.GoToNext
	})
	return srcs
}

// isLocal tells site relative sources from external ones.
func isLocal(src string) bool {
	if src == "" || strings.HasPrefix(src, "//") || strings.HasPrefix(src, "data:") {
		return false
	}
	return !strings.Contains(src, "://")
}
