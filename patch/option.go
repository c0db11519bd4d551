package patch

import (
	"github.com/viant/gpmldiff/config"
	"github.com/viant/gpmldiff/diff"
	"go.uber.org/zap"
)

type Option func(*Patch)

// WithThreshold sets minimum score of a recorded and live element pair
func WithThreshold(threshold int) Option {
	return func(p *Patch) {
		p.threshold = threshold
	}
}

// WithDiffer sets differ used to re-establish correspondence
func WithDiffer(differ *diff.Differ) Option {
	return func(p *Patch) {
		p.differ = differ
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Patch) {
		p.logger = logger
	}
}

// WithConfig applies patch threshold and matching settings
func WithConfig(cfg *config.Config) Option {
	return func(p *Patch) {
		p.threshold = cfg.PatchThreshold
		p.differ = diff.New(diff.WithConfig(cfg), diff.WithLogger(p.logger))
	}
}
