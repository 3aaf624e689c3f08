// Package shrdlite is the public entry point to the blocks-world
// reasoning core: it wires the Interpreter and Planner together so a
// caller only needs parse trees and a world snapshot to get back an
// action plan, per spec.md's control flow:
//
//	parses → Interpreter.interpret → DNF formulas → Planner.plan → action strings
package shrdlite

import (
	"context"

	"github.com/mictra/shrdlite-course-project/internal/config"
	"github.com/mictra/shrdlite-course-project/internal/interpreter"
	"github.com/mictra/shrdlite-course-project/internal/parsetree"
	"github.com/mictra/shrdlite-course-project/internal/planner"
	"github.com/mictra/shrdlite-course-project/internal/search"
	"github.com/mictra/shrdlite-course-project/internal/worldmodel"
	"go.uber.org/zap"
)

// Re-exported data-model types so callers never need to import the
// internal packages directly.
type (
	WorldState = worldmodel.State
	Object     = worldmodel.Object
	Command    = parsetree.Command
	Entity     = parsetree.Entity
	Location   = parsetree.Location
	ParseResult = parsetree.ParseResult
)

// Re-exported constructors/constants for the parse-tree vocabulary.
const (
	Take = parsetree.KindTake
	Put  = parsetree.KindPut
	Move = parsetree.KindMove

	LeftOf  = parsetree.RelLeftOf
	RightOf = parsetree.RelRightOf
	Beside  = parsetree.RelBeside
	Inside  = parsetree.RelInside
	OnTop   = parsetree.RelOnTop
	Above   = parsetree.RelAbove
	Under   = parsetree.RelUnder

	Floor = worldmodel.Floor
)

// Core bundles an Interpreter and a Planner configured to work together.
type Core struct {
	interp *interpreter.Interpreter
	plan   *planner.Planner
}

// Config controls how a Core is constructed.
type Config struct {
	// Logger receives structured trace output from both subsystems. A
	// nil Logger discards all output.
	Logger *zap.Logger
	// Planner tunes the search driver; the zero value uses
	// config.DefaultPlannerConfig().
	Planner config.PlannerConfig
	// Driver overrides the default priority-queue best-first search
	// driver; nil uses search.NewBestFirstDriver(Logger).
	Driver search.Driver
}

// New builds a Core from cfg.
func New(cfg Config) *Core {
	return &Core{
		interp: interpreter.New(cfg.Logger),
		plan:   planner.New(cfg.Driver, cfg.Planner, cfg.Logger),
	}
}

// Interpret resolves every candidate parse against world and returns the
// DNF formula each one emits, per spec.md §4.2.
func (c *Core) Interpret(parses []ParseResult, world *WorldState) ([]interpreter.Interpretation, error) {
	return c.interp.Interpret(parses, world)
}

// Plan turns interpretations into one plan (a list of utterances and
// one-letter action codes) per interpretation, per spec.md §4.4.
func (c *Core) Plan(ctx context.Context, interpretations []interpreter.Interpretation, world *WorldState) ([][]string, error) {
	return c.plan.Plan(ctx, interpretations, world)
}

// Run is the end-to-end convenience entry point: interpret then plan,
// returning the first successful plan's utterance/action stream.
func (c *Core) Run(ctx context.Context, parses []ParseResult, world *WorldState) ([]string, error) {
	interpretations, err := c.Interpret(parses, world)
	if err != nil {
		return nil, err
	}
	plans, err := c.Plan(ctx, interpretations, world)
	if err != nil {
		return nil, err
	}
	return plans[0], nil
}
