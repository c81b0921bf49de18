package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Stats counts the work done by a build.
type Stats struct {
	Pages         int    // pages written
	Assets        int    // static files copied
	Bytes         uint64 // bytes written, pages and assets
	MissingAssets int    // local img sources not found in static
}

func (s Stats) String() string {
	return fmt.Sprintf("%d pages, %d assets, %s written",
		s.Pages, s.Assets, humanize.Bytes(s.Bytes))
}

// Builder generates a site. Content and static files are read through
// fs.FS; the result is written to the native directory Config.Public.
type Builder struct {
	cfg     Config
	content fs.FS
	static  fs.FS // nil without static assets
	tmpl    *Template
}

// NewBuilder reads the template and opens the directories named by cfg.
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tmpl, err := ReadTemplate(cfg.Template)
	if err != nil {
		return nil, err
	}
	if !dirExists(cfg.Content) {
		return nil, errors.Errorf("content directory %s not found", cfg.Content)
	}
	var static fs.FS
	if cfg.Static != "" && dirExists(cfg.Static) {
		static = Dir(cfg.Static)
	} else {
		tracer().Infof("no static directory, skipping assets")
	}
	return NewBuilderFS(cfg, Dir(cfg.Content), static, tmpl), nil
}

// NewBuilderFS is like NewBuilder with explicit sources. static may be nil.
func NewBuilderFS(cfg Config, content, static fs.FS, tmpl *Template) *Builder {
	return &Builder{cfg: cfg, content: content, static: static, tmpl: tmpl}
}

// Build writes the site: it optionally cleans the public directory, copies
// the static assets and generates one page per markdown file. The first
// failing page stops the build and is returned.
func (b *Builder) Build(ctx context.Context) (Stats, error) {
	var stats Stats
	if b.cfg.Clean {
		if err := RemoveTree(b.cfg.Public); err != nil {
			return stats, err
		}
	}
	if err := os.MkdirAll(b.cfg.Public, 0o755); err != nil {
		return stats, errors.Wrap(err, "create public directory")
	}
	if b.static != nil {
		n, size, err := CopyTree(ctx, b.static, b.cfg.Public)
		if err != nil {
			return stats, errors.Wrap(err, "copy static")
		}
		stats.Assets, stats.Bytes = n, size
		tracer().Infof("copied %d assets (%s)", n, humanize.Bytes(size))
	}

	pages, err := b.markdownFiles()
	if err != nil {
		return stats, err
	}
	err = b.generate(ctx, pages, &stats)
	return stats, err
}

// markdownFiles lists the markdown files below the content root.
func (b *Builder) markdownFiles() ([]string, error) {
	var pages []string
	err := fs.WalkDir(b.content, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isMarkdown(name) {
			tracer().Debugf("skipping %s, not markdown", name)
			return nil
		}
		pages = append(pages, name)
		return nil
	})
	return pages, errors.Wrap(err, "walk content")
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// generate runs the pages through a pool of workers.
func (b *Builder) generate(parent context.Context, pages []string, stats *Stats) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	jobs := make(chan string)
	for i := 0; i < b.cfg.workers(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				size, missing, err := b.page(name)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = errors.Wrapf(err, "generate %s", name)
						cancel()
					}
				} else {
					stats.Pages++
					stats.Bytes += size
					stats.MissingAssets += missing
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, name := range pages {
		select {
		case jobs <- name:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return parent.Err()
}

// page generates one page and reports its size and the number of local
// images missing from the static tree.
func (b *Builder) page(name string) (uint64, int, error) {
	src, err := fs.ReadFile(b.content, name)
	if err != nil {
		return 0, 0, err
	}
	p, err := GeneratePage(src, b.tmpl, b.cfg.Options())
	if err != nil {
		return 0, 0, err
	}

	target := filepath.Join(b.cfg.Public, filepath.FromSlash(outputName(name)))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, 0, err
	}
	if err := os.WriteFile(target, p.HTML, 0o644); err != nil {
		return 0, 0, err
	}
	tracer().Infof("generated %s from %s (%s)", target, name, humanize.Bytes(uint64(len(p.HTML))))

	missing := 0
	for _, src := range p.Images {
		if !isLocal(src) {
			continue
		}
		asset := src
		if !strings.HasPrefix(asset, "/") {
			asset = path.Join(path.Dir(name), asset)
		}
		if b.static == nil || !exists(b.static, asset) {
			tracer().Errorf("%s: image %s not found in static files", name, src)
			missing++
		}
	}
	return uint64(len(p.HTML)), missing, nil
}

// outputName maps a content path to its page path.
func outputName(name string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ".html"
}
