package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/viant/afs"
	"github.com/viant/gpmldiff/gpml"
	"github.com/viant/gpmldiff/internal/cli"
	"github.com/viant/gpmldiff/patch"
	"go.uber.org/zap"
)

const usage = `Usage: gpmlpatch [flags] pathway.gpml delta.dgpml

Applies a delta produced by gpmldiff -o delta to a GPML pathway.

Flags:
`

func main() {
	os.Exit(run(context.Background(), afs.New(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, fs afs.Service, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("gpmlpatch", flag.ContinueOnError)
	flags.SetOutput(stderr)
	destURL := flags.String("out", "", "patched pathway location, overwrites input by default")
	reverse := flags.Bool("reverse", false, "undo the delta")
	configURL := flags.String("config", "", "YAML config location")
	threshold := flags.Int("threshold", -1, "minimum match score, config patchThreshold by default")
	verbose := flags.Bool("v", false, "verbose logging")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return 1
	}
	for _, URL := range flags.Args() {
		if ok, _ := fs.Exists(ctx, URL); !ok {
			fmt.Fprintf(stderr, "file not found: %v\n", URL)
			flags.Usage()
			return 1
		}
	}
	logger, err := cli.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()
	cfg, err := cli.LoadConfig(ctx, fs, *configURL)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *threshold >= 0 {
		cfg.PatchThreshold = *threshold
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	pathwayURL, deltaURL := flags.Arg(0), flags.Arg(1)
	if *destURL == "" {
		*destURL = pathwayURL
	}
	store := gpml.NewStore(fs)
	pathway, err := store.Load(ctx, pathwayURL)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	data, err := fs.DownloadWithURL(ctx, deltaURL)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	p, err := patch.Read(bytes.NewReader(data), patch.WithLogger(logger), patch.WithConfig(cfg))
	if err == nil && *reverse {
		p, err = p.Reverse()
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	report, err := p.Apply(pathway)
	if err != nil {
		logger.Error("patch failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err = store.Save(ctx, *destURL, pathway); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, report)
	return 0
}
