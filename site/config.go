package site

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/russross/mdtree"
)

// Config describes where a site comes from and where it goes.
type Config struct {
	Content  string `toml:"content"`  // markdown tree
	Static   string `toml:"static"`   // assets copied verbatim
	Public   string `toml:"public"`   // output directory
	Template string `toml:"template"` // page template file

	Workers int  `toml:"workers"` // pages generated in parallel, 0 means GOMAXPROCS
	Clean   bool `toml:"clean"`   // remove Public before building

	HeadingIDs       bool   `toml:"heading_ids"`
	HeadingIDPrefix  string `toml:"heading_id_prefix"`
	NormalizeUnicode bool   `toml:"normalize_unicode"`
}

// DefaultConfig returns the layout of a site in the current directory.
func DefaultConfig() Config {
	return Config{
		Content:  "content",
		Static:   "static",
		Public:   "public",
		Template: "template.html",
		Clean:    true,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not parse config %s", path)
	}
	for _, key := range md.Undecoded() {
		tracer().Infof("config %s: unknown key %s", path, key)
	}
	return cfg, cfg.Validate()
}

// DecodeConfig parses TOML text on top of DefaultConfig.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "could not parse config")
	}
	return cfg, cfg.Validate()
}

// Validate checks that the directories are set and distinct.
func (c Config) Validate() error {
	switch {
	case c.Content == "":
		return errors.New("config: content directory not set")
	case c.Public == "":
		return errors.New("config: public directory not set")
	case c.Template == "":
		return errors.New("config: template not set")
	case overlaps(c.Public, c.Content):
		return errors.Errorf("config: public directory %q overlaps content directory %q", c.Public, c.Content)
	case c.Static != "" && overlaps(c.Public, c.Static):
		return errors.Errorf("config: public directory %q overlaps static directory %q", c.Public, c.Static)
	case c.Workers < 0:
		return errors.Errorf("config: workers must not be negative, have %d", c.Workers)
	}
	return nil
}

// overlaps reports whether one of the directories a and b contains the
// other, or both are the same.
func overlaps(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return within(absA, absB) || within(absB, absA)
}

// within reports whether dir is parent or equal to name.
func within(dir, name string) bool {
	rel, err := filepath.Rel(dir, name)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Options returns the conversion options for the pages of the site.
func (c Config) Options() mdtree.Options {
	opts := mdtree.Options{HeadingIDPrefix: c.HeadingIDPrefix}
	if c.HeadingIDs {
		opts.Extensions |= mdtree.AutoHeadingIDs
	}
	if c.NormalizeUnicode {
		opts.Extensions |= mdtree.NormalizeUnicode
	}
	return opts
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
