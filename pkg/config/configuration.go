package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vhive-serverless/sortbench/pkg/common"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

type BenchmarkConfiguration struct {
	Seed int64 `json:"Seed" mapstructure:"Seed"`

	InputSizes []int `json:"InputSizes" mapstructure:"InputSizes"`
	Trials     int   `json:"Trials" mapstructure:"Trials"`
	MinValue   int   `json:"MinValue" mapstructure:"MinValue"`
	MaxValue   int   `json:"MaxValue" mapstructure:"MaxValue"`

	Algorithms     []string              `json:"Algorithms" mapstructure:"Algorithms"`
	InputIsolation common.InputIsolation `json:"InputIsolation" mapstructure:"InputIsolation"`
	VerifyOutput   bool                  `json:"VerifyOutput" mapstructure:"VerifyOutput"`

	PlotPath string `json:"PlotPath" mapstructure:"PlotPath"`
}

func (c *BenchmarkConfiguration) Validate() error {
	if len(c.InputSizes) == 0 {
		return fmt.Errorf("%w: no input sizes", ErrInvalidConfiguration)
	}
	for i := 1; i < len(c.InputSizes); i++ {
		if c.InputSizes[i] <= c.InputSizes[i-1] {
			return fmt.Errorf("%w: input sizes must be strictly ascending, %d follows %d",
				ErrInvalidConfiguration, c.InputSizes[i], c.InputSizes[i-1])
		}
	}

	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be at least 1, got %d", ErrInvalidConfiguration, c.Trials)
	}

	// bucket sort rejects negative values
	if c.MinValue < 0 {
		return fmt.Errorf("%w: minimum value must be non-negative, got %d", ErrInvalidConfiguration, c.MinValue)
	}
	if c.MaxValue < c.MinValue {
		return fmt.Errorf("%w: maximum value %d is below minimum %d", ErrInvalidConfiguration, c.MaxValue, c.MinValue)
	}

	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms selected", ErrInvalidConfiguration)
	}
	for i, a := range c.Algorithms {
		if !slices.Contains(common.DefaultAlgorithms, a) {
			return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfiguration, a)
		}
		if slices.Contains(c.Algorithms[:i], a) {
			return fmt.Errorf("%w: algorithm %q listed twice", ErrInvalidConfiguration, a)
		}
	}

	if !slices.Contains(common.ValidInputIsolations, c.InputIsolation) {
		return fmt.Errorf("%w: unknown input isolation %q", ErrInvalidConfiguration, c.InputIsolation)
	}

	return nil
}
