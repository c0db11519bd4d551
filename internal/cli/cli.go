// Package cli holds helpers shared by command line tools
package cli

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/gpmldiff/config"
	"go.uber.org/zap"
)

// NewLogger returns development logger when verbose, production logger otherwise
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// LoadConfig loads config from URL, or returns defaults when URL is empty
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*config.Config, error) {
	if URL == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(ctx, fs, URL)
}
