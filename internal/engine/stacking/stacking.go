// Package stacking implements the engine interface: layered, stacking
// modifiers resolved in two affine stages (species first, bonuses
// second). The two-stage order is a compatibility contract with saved
// characters, not an implementation detail.
package stacking

import (
	"math"

	"github.com/statforge/statforge/internal/engine"
)

// Engine is the stacking implementation of engine.Engine. It holds no
// state; every method is a pure function of its arguments and safe for
// concurrent use.
type Engine struct{}

// Config contains configuration for the stacking engine.
type Config struct{}

// Validate validates the config.
func (cfg *Config) Validate() error {
	return nil
}

// New creates a new stacking engine.
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{}, nil
}

// Verify that Engine implements the engine interface
var _ engine.Engine = (*Engine)(nil)

// round2 rounds to 2 decimal places, the precision stored on sheets.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
