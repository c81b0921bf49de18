//
// Mdsite static site generator, based upon the Blackfriday Markdown Processor
// by Russ Ross <russ@russross.com>
//

// Static site generator front-end for command-line use

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/russross/mdtree"
	"github.com/russross/mdtree/site"
)

var githash string

// tracer traces with key 'mdtree.cli'
func tracer() tracing.Trace {
	return tracing.Select("mdtree.cli")
}

// options are the parsed command-line arguments.
type options struct {
	version    bool
	pretty     bool
	ids        bool
	keep       bool
	configFile string
	convert    string
	traceLevel string
	cfg        site.Config // site flags on top of site.DefaultConfig

	flags *flag.FlagSet
}

// parseArgs parses the command line, without the program name.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	o := &options{cfg: site.DefaultConfig()}
	fs := flag.NewFlagSet("mdsite", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&o.version, "version", false, "show mdsite version")
	fs.StringVar(&o.configFile, "config", "", "read site configuration from a TOML file")
	fs.StringVar(&o.convert, "convert", "", "convert a single markdown file (- for stdin) to standard output")
	fs.BoolVar(&o.pretty, "pretty", false, "indent the output of -convert")
	fs.StringVar(&o.cfg.Content, "content", o.cfg.Content, "directory of markdown pages")
	fs.StringVar(&o.cfg.Static, "static", o.cfg.Static, "directory of static assets")
	fs.StringVar(&o.cfg.Public, "public", o.cfg.Public, "output directory")
	fs.StringVar(&o.cfg.Template, "template", o.cfg.Template, "page template")
	fs.IntVar(&o.cfg.Workers, "workers", o.cfg.Workers, "pages generated in parallel (0: one per CPU)")
	fs.BoolVar(&o.ids, "ids", false, "add id attributes to headings")
	fs.BoolVar(&o.keep, "keep", false, "do not remove the output directory before building")
	fs.StringVar(&o.traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Mdsite Static Site Generator\n\n"+
			"Usage:\n"+
			"  mdsite [options]\n"+
			"  mdsite -convert inputfile [options]\n\n"+
			"Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.flags = fs
	return o, nil
}

// siteConfig returns the configuration for the run: the config file, if
// any, with the flags given on the command line written over it.
func (o *options) siteConfig() (site.Config, error) {
	cfg := o.cfg
	if o.configFile != "" {
		fileCfg, err := site.LoadConfig(o.configFile)
		if err != nil {
			return cfg, err
		}
		cfg = override(o.flags, fileCfg, o.cfg)
	}
	if o.ids {
		cfg.HeadingIDs = true
	}
	if o.keep {
		cfg.Clean = false
	}
	return cfg, cfg.Validate()
}

// override copies the flags set in fs from flagCfg over fileCfg.
func override(fs *flag.FlagSet, fileCfg, flagCfg site.Config) site.Config {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "content":
			fileCfg.Content = flagCfg.Content
		case "static":
			fileCfg.Static = flagCfg.Static
		case "public":
			fileCfg.Public = flagCfg.Public
		case "template":
			fileCfg.Template = flagCfg.Template
		case "workers":
			fileCfg.Workers = flagCfg.Workers
		}
	})
	return fileCfg
}

func main() {
	o, err := parseArgs(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if o.version {
		if githash != "" {
			githash = "+" + githash
		}
		fmt.Printf("%s%s\n", mdtree.Version, githash)
		return
	}

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.mdtree":      o.traceLevel,
		"trace.mdtree.site": o.traceLevel,
		"trace.mdtree.cli":  o.traceLevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		log.Fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	cfg, err := o.siteConfig()
	if err != nil {
		log.Fatalf("error in configuration: %v", err)
	}

	if o.convert != "" {
		if err := convertFile(o.convert, os.Stdin, cfg.Options(), o.pretty, os.Stdout); err != nil {
			log.Fatalf("error converting %s: %v", o.convert, err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	builder, err := site.NewBuilder(cfg)
	if err != nil {
		log.Fatalf("error setting up the build: %v", err)
	}
	stats, err := builder.Build(ctx)
	if err != nil {
		log.Fatalf("error building site: %v", err)
	}
	tracer().Infof("build of %s done", cfg.Public)
	if stats.MissingAssets > 0 {
		pterm.Warning.Printf("%d images not found in %s\n", stats.MissingAssets, cfg.Static)
	}
	pterm.Success.Printf("%s: %s\n", cfg.Public, stats)
}

// convertFile renders the markdown file name to out. The name "-" reads
// stdin.
func convertFile(name string, stdin io.Reader, opts mdtree.Options, pretty bool, out io.Writer) error {
	// read the input
	var input []byte
	var err error
	if name == "-" {
		input, err = io.ReadAll(stdin)
	} else {
		input, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	var output string
	if pretty {
		output, err = mdtree.MarkdownPretty(string(input), opts)
	} else {
		output, err = mdtree.MarkdownOptions(string(input), opts)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, output)
	return err
}
