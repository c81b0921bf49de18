package mdtree_test

import (
	"fmt"

	"github.com/russross/mdtree"
)

func ExampleMarkdown() {
	html, err := mdtree.Markdown("# Title\n\nHello **world** and *friend*.\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(html)
	// Output: <div><h1>Title</h1><p>Hello <b>world</b> and <i>friend</i>.</p></div>
}

func ExampleExtractTitle() {
	title, err := mdtree.ExtractTitle("## Not H1\n\n# Real Title\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(title)
	// Output: Real Title
}
