package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// fetchFlags holds flags for retrieving remote pages.
type fetchFlags struct {
	renderJS bool
	timeout  string
}

// previewFlags holds HTML preview flags.
type previewFlags struct {
	enabled  bool
	style    string
	disabled bool
}

// watchFlags holds watch mode flags.
type watchFlags struct {
	debounce string
}

// convertFlags holds all flags for the convert and watch commands.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	fetch   fetchFlags
	preview previewFlags
	watch   watchFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addFetchFlags adds fetch flags to a FlagSet.
func addFetchFlags(fs *flag.FlagSet, f *fetchFlags) {
	fs.BoolVar(&f.renderJS, "render-js", false, "render pages with a headless browser before converting")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "fetch and convert timeout (e.g., 30s, 2m)")
}

// addPreviewFlags adds preview flags to a FlagSet.
func addPreviewFlags(fs *flag.FlagSet, f *previewFlags) {
	fs.BoolVar(&f.enabled, "preview", false, "write an HTML preview next to each markdown file")
	fs.StringVar(&f.style, "preview-style", "", "highlight style for previews (implies --preview)")
	fs.BoolVar(&f.disabled, "no-preview", false, "disable previews")
}

// addWatchFlags adds watch mode flags to a FlagSet.
func addWatchFlags(fs *flag.FlagSet, f *watchFlags) {
	fs.StringVar(&f.debounce, "debounce", "", "delay before reconverting after a change (e.g., 300ms)")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addFetchFlags(fs, &f.fetch)
	addPreviewFlags(fs, &f.preview)
	addWatchFlags(fs, &f.watch)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
