package config

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.Threshold)
	assert.Equal(t, 70, cfg.PatchThreshold)
	assert.Equal(t, StrategyGreedy, cfg.Strategy)
}

func TestConfig_Validate_Shared(t *testing.T) {
	valid, invalid := DefaultConfig(), DefaultConfig()
	invalid.Excluded = []string{"NoSuchTag"}
	wg := sync.WaitGroup{}
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				errs[i] = valid.Validate()
				return
			}
			errs[i] = invalid.Validate()
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if i%2 == 0 {
			assert.NoError(t, err)
			continue
		}
		assert.Error(t, err)
	}
}

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      func(t *testing.T, cfg *Config)
		hasError    bool
	}{
		{
			description: "empty document keeps defaults",
			input:       "",
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			description: "overrides",
			input: `strategy: optimal
threshold: 50
weights:
  identifier: 40
  overrides:
    TextLabel: 30
excluded:
  - ZOrder
output:
  format: delta
`,
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, StrategyOptimal, cfg.Strategy)
				assert.Equal(t, 50, cfg.Threshold)
				assert.Equal(t, 70, cfg.PatchThreshold)
				assert.Equal(t, 40, cfg.Weights.Identifier)
				assert.Equal(t, 10, cfg.Weights.Coordinate)
				assert.Equal(t, map[string]int{"TextLabel": 30}, cfg.Weights.Overrides)
				assert.Equal(t, []string{"ZOrder"}, cfg.Excluded)
				assert.Equal(t, "delta", cfg.Output.Format)
			},
		},
		{description: "bad strategy", input: "strategy: random", hasError: true},
		{description: "threshold out of range", input: "threshold: 101", hasError: true},
		{description: "negative weight", input: "weights:\n  coordinate: -1", hasError: true},
		{description: "unknown excluded tag", input: "excluded:\n  - Colour", hasError: true},
		{description: "unknown override tag", input: "weights:\n  overrides:\n    Colour: 5", hasError: true},
		{description: "malformed", input: "threshold: [", hasError: true},
	}
	for _, testCase := range testCases {
		cfg, err := Parse([]byte(testCase.input))
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		testCase.expect(t, cfg)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/config/gpmldiff.yaml"
	require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("similarity: basic\n")))
	cfg, err := Load(ctx, fs, URL)
	require.NoError(t, err)
	assert.Equal(t, SimilarityBasic, cfg.Similarity)

	_, err = Load(ctx, fs, "mem://localhost/config/missing.yaml")
	assert.Error(t, err)
}
