// Package site generates a static web site from a tree of markdown files.
//
// Every markdown file below the content directory becomes an HTML page at
// the same relative path below the public directory, built by replacing the
// {{ Title }} and {{ Content }} placeholders of a page template with the
// first level 1 heading and the converted document. Files of the static
// directory are copied as they are.
package site
