// Package config loads wayfare's tuning file. All scoring and scheduling
// constants live here so they can be adjusted without code changes; the
// defaults are the hand-tuned values the engine ships with.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scoring holds the decision engine's factor weights and thresholds.
type Scoring struct {
	RatingWeight     float64 `yaml:"rating_weight"`
	PriceWeight      float64 `yaml:"price_weight"`
	DistanceWeight   float64 `yaml:"distance_weight"`
	CuisineWeight    float64 `yaml:"cuisine_weight"`
	PopularityWeight float64 `yaml:"popularity_weight"`

	ViabilityFloor      float64 `yaml:"viability_floor"`
	MaxAlternatives     int     `yaml:"max_alternatives"`
	DistanceCutoffMiles float64 `yaml:"distance_cutoff_miles"`
	PopularityCeiling   int     `yaml:"popularity_ceiling"`
}

// Slots holds the slot allocator's fallback policy.
type Slots struct {
	FallbackStepMin int `yaml:"fallback_step_min"`
	FallbackTries   int `yaml:"fallback_tries"`
}

type Config struct {
	Scoring Scoring `yaml:"scoring"`
	Slots   Slots   `yaml:"slots"`
}

// Default returns the shipped tuning values.
func Default() Config {
	return Config{
		Scoring: Scoring{
			RatingWeight:        0.30,
			PriceWeight:         0.25,
			DistanceWeight:      0.20,
			CuisineWeight:       0.15,
			PopularityWeight:    0.10,
			ViabilityFloor:      0.35,
			MaxAlternatives:     2,
			DistanceCutoffMiles: 10,
			PopularityCeiling:   500,
		},
		Slots: Slots{
			FallbackStepMin: 30,
			FallbackTries:   3,
		},
	}
}

// Load reads the tuning file at path, overlaying it on the defaults.
// A missing file is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	s := c.Scoring
	sum := s.RatingWeight + s.PriceWeight + s.DistanceWeight + s.CuisineWeight + s.PopularityWeight
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.3f", sum)
	}
	if s.ViabilityFloor < 0 || s.ViabilityFloor > 1 {
		return fmt.Errorf("viability_floor %.2f outside [0, 1]", s.ViabilityFloor)
	}
	if s.DistanceCutoffMiles <= 0 {
		return fmt.Errorf("distance_cutoff_miles must be > 0")
	}
	if c.Slots.FallbackStepMin <= 0 || c.Slots.FallbackTries < 0 {
		return fmt.Errorf("invalid slot fallback policy")
	}
	return nil
}
