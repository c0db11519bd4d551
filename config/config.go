package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/viant/afs"
	"github.com/viant/gpmldiff/model"
	"gopkg.in/yaml.v3"
)

const (
	StrategyGreedy  = "greedy"
	StrategyOptimal = "optimal"

	SimilarityBasic  = "basic"
	SimilarityBetter = "better"
)

// Config represents diff and patch settings
type Config struct {
	Strategy       string   `yaml:"strategy" validate:"oneof=greedy optimal"`
	Similarity     string   `yaml:"similarity" validate:"oneof=basic better"`
	Threshold      int      `yaml:"threshold" validate:"min=0,max=100"`
	PatchThreshold int      `yaml:"patchThreshold" validate:"min=0,max=100"`
	Weights        Weights  `yaml:"weights"`
	Excluded       []string `yaml:"excluded" validate:"dive,gpmltag"` // extra attribute tags never compared
	Output         Output   `yaml:"output"`
	Service        Service  `yaml:"service"`
}

// Weights controls BetterSim attribute weights
type Weights struct {
	Identifier int            `yaml:"identifier" validate:"min=0"`
	Coordinate int            `yaml:"coordinate" validate:"min=0"`
	Attribute  int            `yaml:"attribute" validate:"min=0"`
	Overrides  map[string]int `yaml:"overrides" validate:"dive,keys,gpmltag,endkeys,min=0"` // per attribute tag
}

// Output controls diff rendering
type Output struct {
	Format string `yaml:"format" validate:"oneof=text delta svg stats"`
	Color  bool   `yaml:"color"`
}

// Service controls HTTP service
type Service struct {
	Port          int   `yaml:"port" validate:"min=1,max=65535"`
	MaxUploadSize int64 `yaml:"maxUploadSize" validate:"min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	result := validator.New()
	if err := result.RegisterValidation("gpmltag", isPropertyTag); err != nil {
		panic(err)
	}
	return result
}

// Validate checks config constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func isPropertyTag(field validator.FieldLevel) bool {
	_, ok := model.PropertyByTag(field.Field().String())
	return ok
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	return &Config{
		Strategy:       StrategyGreedy,
		Similarity:     SimilarityBetter,
		Threshold:      60,
		PatchThreshold: 70,
		Weights: Weights{
			Identifier: 80,
			Coordinate: 10,
			Attribute:  10,
		},
		Output: Output{Format: "text"},
		Service: Service{
			Port:          8080,
			MaxUploadSize: 32 << 20,
		},
	}
}

// Load loads YAML config overriding defaults
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	return Parse(data)
}

// Parse parses YAML config overriding defaults
func Parse(data []byte) (*Config, error) {
	result := DefaultConfig()
	if err := yaml.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}
