package mdtree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// NodeType tells a text leaf from an element.
type NodeType int

const (
	Leaf    NodeType = iota // A value with an optional wrapping tag
	Element                 // A tag with children
)

var nodeTypeNames = []string{
	Leaf:    "Leaf",
	Element: "Element",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is a single node of an HTML tree. A node is either a text leaf, an
// optionally tagged value, or an element, a tag with a non-empty sequence of
// children. Nodes are never changed after construction; use NewLeaf and
// NewElement to build them.
//
// The zero Node is a leaf without a value and fails to render.
type Node struct {
	typ      NodeType
	tag      string
	value    string
	hasValue bool
	children []*Node
	attrs    *Attributes
}

// NewLeaf returns a text leaf. An empty tag renders value without a
// wrapping element.
func NewLeaf(tag, value string, attrs ...Attr) *Node {
	return &Node{
		typ:      Leaf,
		tag:      tag,
		value:    value,
		hasValue: true,
		attrs:    NewAttributes(attrs...),
	}
}

// NewElement returns an element holding children in order. The slice is
// copied.
func NewElement(tag string, children []*Node, attrs ...Attr) *Node {
	return &Node{
		typ:      Element,
		tag:      tag,
		children: append([]*Node(nil), children...),
		attrs:    NewAttributes(attrs...),
	}
}

// Type returns the variant of n.
func (n *Node) Type() NodeType { return n.typ }

// Tag returns the tag, empty for an untagged leaf.
func (n *Node) Tag() string { return n.tag }

// Value returns the value of a leaf and whether it is set.
func (n *Node) Value() (string, bool) { return n.value, n.hasValue }

// Children returns a copy of the children of an element.
func (n *Node) Children() []*Node { return append([]*Node(nil), n.children...) }

// Attrs returns the attributes of n. The result must not be modified.
func (n *Node) Attrs() *Attributes {
	if n.attrs == nil {
		return NewAttributes()
	}
	return n.attrs
}

// Render returns the HTML for n and all of its descendants.
func (n *Node) Render() (string, error) {
	var out bytes.Buffer
	if err := n.render(&out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// WriteTo writes the HTML for n to w. Nothing is written when the tree fails
// to render.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var out bytes.Buffer
	if err := n.render(&out); err != nil {
		return 0, err
	}
	return out.WriteTo(w)
}

func (n *Node) render(out *bytes.Buffer) error {
	switch n.typ {
	case Leaf:
		if !n.hasValue {
			return errors.Wrapf(ErrMissingValue, "render <%s>", n.tag)
		}
		if n.tag == "" {
			out.WriteString(n.value)
			return nil
		}
		n.openTag(out)
		out.WriteString(n.value)
		n.closeTag(out)
		return nil
	case Element:
		if n.tag == "" {
			return errors.WithStack(ErrMissingTag)
		}
		if len(n.children) == 0 {
			return errors.Wrapf(ErrEmptyChildren, "render <%s>", n.tag)
		}
		n.openTag(out)
		for _, child := range n.children {
			if err := child.render(out); err != nil {
				return err
			}
		}
		n.closeTag(out)
		return nil
	}
	return errors.Errorf("render: invalid node type %v", n.typ)
}

func (n *Node) openTag(out *bytes.Buffer) {
	out.WriteByte('<')
	out.WriteString(n.tag)
	if n.attrs != nil {
		out.WriteString(n.attrs.String())
	}
	out.WriteByte('>')
}

func (n *Node) closeTag(out *bytes.Buffer) {
	out.WriteString("</")
	out.WriteString(n.tag)
	out.WriteByte('>')
}

// Equal reports whether n and other describe the same tree.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.typ != other.typ || n.tag != other.tag ||
		n.value != other.value || n.hasValue != other.hasValue ||
		len(n.children) != len(other.children) {
		return false
	}
	if !n.Attrs().Equal(other.Attrs()) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// WalkStatus allows NodeVisitor to have some control over the tree traversal.
// It is returned from NodeVisitor and different values allow Node.Walk to
// decide which node to go to next.
type WalkStatus int

const (
	GoToNext     WalkStatus = iota // The default traversal of every node.
	SkipChildren                   // Skips all children of current node.
	Terminate                      // Terminates the traversal.
)

// NodeVisitor is a callback to be called when traversing the tree.
// Elements are visited twice: once with entering=true before their children,
// then with entering=false after all the children are done. Leaves are
// visited once, entering.
type NodeVisitor func(node *Node, entering bool) WalkStatus

// Walk traverses the tree rooted at n depth first.
func (n *Node) Walk(visitor NodeVisitor) {
	n.walk(visitor)
}

func (n *Node) walk(visitor NodeVisitor) WalkStatus {
	status := visitor(n, true)
	if status == Terminate || n.typ == Leaf {
		return status
	}
	if status != SkipChildren {
		for _, child := range n.children {
			if child.walk(visitor) == Terminate {
				return Terminate
			}
		}
	}
	return visitor(n, false)
}

func (n *Node) String() string {
	return dumpString(n)
}

func dump(n *Node, out *bytes.Buffer, depth int) {
	if n == nil {
		return
	}
	out.Write(bytes.Repeat([]byte("\t"), depth))
	if n.typ == Leaf {
		fmt.Fprintf(out, "%s(%q%s, %q)\n", n.typ, n.tag, n.Attrs(), n.value)
		return
	}
	fmt.Fprintf(out, "%s(%q%s)\n", n.typ, n.tag, n.Attrs())
	for _, child := range n.children {
		dump(child, out, depth+1)
	}
}

func dumpString(n *Node) string {
	var out bytes.Buffer
	dump(n, &out, 0)
	return out.String()
}
