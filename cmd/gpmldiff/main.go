package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/gpmldiff/config"
	"github.com/viant/gpmldiff/diff"
	"github.com/viant/gpmldiff/diff/output"
	"github.com/viant/gpmldiff/gpml"
	"github.com/viant/gpmldiff/internal/cli"
	"go.uber.org/zap"
)

const usage = `Usage: gpmldiff [flags] old.gpml new.gpml

Compares two GPML pathways and reports insertions, deletions and modifications.

Flags:
`

func main() {
	os.Exit(run(context.Background(), afs.New(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, fs afs.Service, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("gpmldiff", flag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.String("o", "", "output format: text, delta, svg or stats")
	destURL := flags.String("out", "", "output location, stdout by default")
	colored := flags.Bool("color", false, "colour text output")
	configURL := flags.String("config", "", "YAML config location")
	strategy := flags.String("strategy", "", "correspondence search: greedy or optimal")
	table := flags.Bool("table", false, "print similarity table to stderr")
	metrics := flags.String("metrics", "", "prometheus textfile location for stats output")
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
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	cfg.Output.Color = cfg.Output.Color || *colored
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err = compare(ctx, fs, cfg, flags.Arg(0), flags.Arg(1), *destURL, *metrics, *table, stdout, stderr, logger); err != nil {
		logger.Error("diff failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func compare(ctx context.Context, fs afs.Service, cfg *config.Config, oldURL, newURL, destURL, metrics string, table bool, stdout, stderr io.Writer, logger *zap.Logger) error {
	store := gpml.NewStore(fs)
	old, err := store.Load(ctx, oldURL)
	if err != nil {
		return err
	}
	updated, err := store.Load(ctx, newURL)
	if err != nil {
		return err
	}
	buffer := &bytes.Buffer{}
	writer := io.Writer(stdout)
	if destURL != "" {
		writer = buffer
	}
	out, err := output.New(cfg.Output.Format, writer, old, updated, &output.Options{
		Color:    cfg.Output.Color && destURL == "",
		OldTitle: path.Base(oldURL),
		NewTitle: path.Base(newURL),
		Textfile: metrics,
	})
	if err != nil {
		return err
	}
	result := diff.New(diff.WithConfig(cfg), diff.WithLogger(logger)).Compare(old, updated)
	if table {
		fmt.Fprint(stderr, result.Table.String())
	}
	if err = result.Write(out); err != nil {
		return err
	}
	if destURL == "" {
		return nil
	}
	return fs.Upload(ctx, destURL, file.DefaultFileOsMode, buffer)
}
