package site

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'mdtree.site'.
func tracer() tracing.Trace {
	return tracing.Select("mdtree.site")
}
