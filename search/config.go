package search

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default parameter values.
const (
	DefaultStart      = "A"
	DefaultGoal       = "T"
	DefaultDepthLimit = 50
)

// Config holds the search parameters.
type Config struct {
	Start      string `validate:"required" yaml:"start"`
	Goal       string `validate:"required" yaml:"goal"`
	DepthLimit int    `validate:"gte=0" yaml:"depthLimit"`
}

// DefaultConfig returns Start "A", Goal "T" and DepthLimit 50.
func DefaultConfig() Config {
	return Config{
		Start:      DefaultStart,
		Goal:       DefaultGoal,
		DepthLimit: DefaultDepthLimit,
	}
}

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks c and wraps any violation in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Merge returns c with the non-empty fields of p applied.
func (c Config) Merge(p Params) Config {
	if p.Start != "" {
		c.Start = p.Start
	}
	if p.Goal != "" {
		c.Goal = p.Goal
	}
	if p.DepthLimit != nil {
		c.DepthLimit = *p.DepthLimit
	}

	return c
}
