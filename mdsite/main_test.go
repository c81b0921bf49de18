package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russross/mdtree"
	"github.com/russross/mdtree/site"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "site.toml")
	require.NoError(t, os.WriteFile(name, []byte(text), 0o644))
	return name
}

func TestSiteConfig(t *testing.T) {
	file := writeConfig(t, "content = \"pages\"\npublic = \"docs\"\nworkers = 4\nclean = true\n")

	var tests = []struct {
		args []string
		want func(*site.Config)
	}{
		{
			nil,
			func(c *site.Config) {},
		},
		{
			[]string{"-public", "out", "-workers", "3"},
			func(c *site.Config) { c.Public, c.Workers = "out", 3 },
		},
		{
			[]string{"-config", file},
			func(c *site.Config) { c.Content, c.Public, c.Workers = "pages", "docs", 4 },
		},
		{
			// flags given on the command line win over the file
			[]string{"-config", file, "-public", "out", "-workers", "2"},
			func(c *site.Config) { c.Content, c.Public, c.Workers = "pages", "out", 2 },
		},
		{
			// a flag given explicitly wins even when it repeats the default
			[]string{"-config", file, "-content", "content"},
			func(c *site.Config) { c.Content, c.Public, c.Workers = "content", "docs", 4 },
		},
		{
			[]string{"-config", file, "-ids", "-keep"},
			func(c *site.Config) {
				c.Content, c.Public, c.Workers = "pages", "docs", 4
				c.HeadingIDs, c.Clean = true, false
			},
		},
	}
	for _, test := range tests {
		o, err := parseArgs(test.args, io.Discard)
		require.NoError(t, err, "%v", test.args)
		got, err := o.siteConfig()
		require.NoError(t, err, "%v", test.args)

		want := site.DefaultConfig()
		test.want(&want)
		assert.Equal(t, want, got, "%v", test.args)
	}
}

func TestSiteConfigErrors(t *testing.T) {
	_, err := parseArgs([]string{"-no-such-flag"}, io.Discard)
	assert.Error(t, err)

	_, err = parseArgs([]string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp), "got %v", err)

	o, err := parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, io.Discard)
	require.NoError(t, err)
	_, err = o.siteConfig()
	assert.Error(t, err)

	o, err = parseArgs([]string{"-public", "content"}, io.Discard)
	require.NoError(t, err)
	_, err = o.siteConfig()
	assert.Error(t, err, "public overlapping content")
}

func TestConvertFile(t *testing.T) {
	doc := "# Title\n\n* a\n* b"
	name := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(name, []byte(doc), 0o644))

	var tests = []struct {
		name   string
		stdin  string
		pretty bool
		want   string
	}{
		{"-", doc, false, "<div><h1>Title</h1><ul><li>a</li><li>b</li></ul></div>"},
		{"-", doc, true, "<div>\n  <h1>Title</h1>\n  <ul>\n    <li>a</li>\n    <li>b</li>\n  </ul>\n</div>\n"},
		{name, "ignored", false, "<div><h1>Title</h1><ul><li>a</li><li>b</li></ul></div>"},
	}
	for _, test := range tests {
		var out bytes.Buffer
		err := convertFile(test.name, strings.NewReader(test.stdin), mdtree.Options{}, test.pretty, &out)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.want, out.String(), test.name)
	}

	var out bytes.Buffer
	err := convertFile("-", strings.NewReader("broken **bold"), mdtree.Options{}, false, &out)
	assert.True(t, errors.Is(err, mdtree.ErrUnbalancedDelimiter), "got %v", err)
	assert.Equal(t, 0, out.Len())

	err = convertFile(filepath.Join(t.TempDir(), "missing.md"), strings.NewReader(""), mdtree.Options{}, false, &out)
	assert.Error(t, err)
}
