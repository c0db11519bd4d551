package diff

import (
	"github.com/viant/gpmldiff/config"
	"github.com/viant/gpmldiff/model"
	"go.uber.org/zap"
)

type Option func(*Differ)

// WithSimilarity sets similarity function
func WithSimilarity(similarity SimilarityFunction) Option {
	return func(d *Differ) {
		d.similarity = similarity
	}
}

func WithCost(cost CostFunction) Option {
	return func(d *Differ) {
		d.cost = cost
	}
}

// WithMatcher sets correspondence search, Greedy by default
func WithMatcher(matcher Matcher) Option {
	return func(d *Differ) {
		d.matcher = matcher
	}
}

// WithThreshold sets minimum score of an accepted pair
func WithThreshold(threshold int) Option {
	return func(d *Differ) {
		d.threshold = threshold
	}
}

// WithExcluded excludes extra attributes from comparison
func WithExcluded(properties ...model.Property) Option {
	return func(d *Differ) {
		d.summarizer = NewSummarizer(properties...)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Differ) {
		d.logger = logger
	}
}

// WithConfig applies strategy, similarity, threshold, weights and exclusions; config is expected to be validated
func WithConfig(cfg *config.Config) Option {
	return func(d *Differ) {
		var excluded []model.Property
		for _, tag := range cfg.Excluded {
			if p, ok := model.PropertyByTag(tag); ok {
				excluded = append(excluded, p)
			}
		}
		d.summarizer = NewSummarizer(excluded...)
		d.threshold = cfg.Threshold
		d.matcher = Greedy
		if cfg.Strategy == config.StrategyOptimal {
			d.matcher = Optimal
		}
		if cfg.Similarity == config.SimilarityBasic {
			d.similarity = &BasicSim{Summarizer: d.summarizer}
			return
		}
		weights := Weights{
			Identifier: cfg.Weights.Identifier,
			Coordinate: cfg.Weights.Coordinate,
			Attribute:  cfg.Weights.Attribute,
		}
		if len(cfg.Weights.Overrides) > 0 {
			weights.Overrides = map[model.Property]int{}
			for tag, weight := range cfg.Weights.Overrides {
				if p, ok := model.PropertyByTag(tag); ok {
					weights.Overrides[p] = weight
				}
			}
		}
		d.similarity = &BetterSim{Summarizer: d.summarizer, Weights: weights}
	}
}
