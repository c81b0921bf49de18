package mdtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mdtree'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree")
}
