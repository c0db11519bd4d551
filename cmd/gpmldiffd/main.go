package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/afs"
	"github.com/viant/gpmldiff/internal/cli"
	"github.com/viant/gpmldiff/service"
	"go.uber.org/zap"
)

func main() {
	configURL := flag.String("config", "", "YAML config location")
	port := flag.Int("port", 0, "listen port, config service.port by default")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	logger, err := cli.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cfg, err := cli.LoadConfig(ctx, afs.New(), *configURL)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if *port > 0 {
		cfg.Service.Port = *port
	}
	if err = cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}
	if err = service.New(cfg, logger).Run(ctx); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
