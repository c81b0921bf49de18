package mdtree

import "github.com/pkg/errors"

// Errors returned while rendering nodes and converting documents. They are
// usually wrapped with context; test for them with errors.Is.
var (
	// A text leaf was rendered without a value.
	ErrMissingValue = errors.New("leaf node has no value")
	// An element was rendered without a tag.
	ErrMissingTag = errors.New("element node has no tag")
	// An element was rendered without children.
	ErrEmptyChildren = errors.New("element node has no children")
	// An emphasis or code delimiter is not closed.
	ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")
	// A span carries a type outside of the known set.
	ErrUnknownSpanType = errors.New("unknown span type")
	// The document has no level 1 heading.
	ErrMissingTitle = errors.New("no level 1 heading found")
)
