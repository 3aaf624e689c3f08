// Package config holds the tunables for the planner's search driver. It
// follows the same YAML-tagged struct + DefaultXConfig() constructor
// convention used throughout this corpus for subsystem configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// HeuristicCombinator selects how per-literal heuristic estimates within
// a single conjunction are combined into one conjunction-level estimate.
type HeuristicCombinator string

const (
	// CombinatorLast takes the last literal's estimate, preserved from
	// the original implementation for fidelity. See DESIGN.md: this is
	// a known-suspect combinator, kept as the default only because
	// changing defaults silently would violate source behaviour.
	CombinatorLast HeuristicCombinator = "last"
	// CombinatorMax takes the max over literals; still admissible when
	// every literal estimate is admissible, and a safer choice.
	CombinatorMax HeuristicCombinator = "max"
)

// PlannerConfig configures a Planner; it is fixed when planner.New is
// called and applies to every Plan call on that Planner.
type PlannerConfig struct {
	// SearchTimeout bounds the wall-clock budget given to the search
	// driver per interpretation. Zero means "use DefaultSearchTimeout".
	SearchTimeout time.Duration `yaml:"search_timeout"`

	// HeuristicCombinator chooses how conjunction-level heuristic
	// estimates are derived from per-literal estimates.
	HeuristicCombinator HeuristicCombinator `yaml:"heuristic_combinator"`

	// MaxColumns is a sanity bound on the number of stack columns a
	// WorldState may declare; worlds beyond it are rejected before
	// search begins rather than silently degrading.
	MaxColumns int `yaml:"max_columns"`
}

// DefaultSearchTimeout is the wall-clock budget used when a
// PlannerConfig leaves SearchTimeout unset, per spec.
const DefaultSearchTimeout = 30 * time.Second

// DefaultMaxColumns is a generous sanity bound; real blocks-world
// instances in the source corpus never exceed single digits.
const DefaultMaxColumns = 64

// DefaultPlannerConfig returns the config used when a caller does not
// build one explicitly.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		SearchTimeout:       DefaultSearchTimeout,
		HeuristicCombinator: CombinatorLast,
		MaxColumns:          DefaultMaxColumns,
	}
}

// Timeout returns the effective timeout, substituting the default when
// the config leaves it at the zero value.
func (c PlannerConfig) Timeout() time.Duration {
	if c.SearchTimeout <= 0 {
		return DefaultSearchTimeout
	}
	return c.SearchTimeout
}

// Combinator returns the effective heuristic combinator, substituting
// CombinatorLast when the config leaves it unset.
func (c PlannerConfig) Combinator() HeuristicCombinator {
	if c.HeuristicCombinator == "" {
		return CombinatorLast
	}
	return c.HeuristicCombinator
}

// ColumnLimit returns the effective column sanity bound, substituting
// DefaultMaxColumns when the config leaves it at or below zero.
func (c PlannerConfig) ColumnLimit() int {
	if c.MaxColumns <= 0 {
		return DefaultMaxColumns
	}
	return c.MaxColumns
}

// LoadPlannerConfig reads a YAML-encoded PlannerConfig from path,
// applying defaults to any field the file leaves zero.
func LoadPlannerConfig(path string) (PlannerConfig, error) {
	cfg := DefaultPlannerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading planner config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing planner config %s: %w", path, err)
	}
	if cfg.SearchTimeout <= 0 {
		cfg.SearchTimeout = DefaultSearchTimeout
	}
	if cfg.HeuristicCombinator == "" {
		cfg.HeuristicCombinator = CombinatorLast
	}
	if cfg.MaxColumns <= 0 {
		cfg.MaxColumns = DefaultMaxColumns
	}
	return cfg, nil
}
