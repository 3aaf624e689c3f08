// Package planner runs best-first search over the StateGraph to turn a
// DNF goal formula into a sequence of primitive arm actions and the
// natural-language utterances describing them.
package planner

import (
	"context"

	"github.com/mictra/shrdlite-course-project/internal/config"
	"github.com/mictra/shrdlite-course-project/internal/coreerrors"
	"github.com/mictra/shrdlite-course-project/internal/dnf"
	"github.com/mictra/shrdlite-course-project/internal/interpreter"
	"github.com/mictra/shrdlite-course-project/internal/logging"
	"github.com/mictra/shrdlite-course-project/internal/search"
	"github.com/mictra/shrdlite-course-project/internal/stategraph"
	"github.com/mictra/shrdlite-course-project/internal/worldmodel"
	"go.uber.org/zap"
)

// Planner turns interpretations into plans by delegating graph search to
// a search.Driver.
type Planner struct {
	driver search.Driver
	cfg    config.PlannerConfig
	log    *zap.SugaredLogger
}

// New builds a Planner. A nil driver defaults to
// search.NewBestFirstDriver(logger); a zero-value cfg is filled in with
// config.DefaultPlannerConfig().
func New(driver search.Driver, cfg config.PlannerConfig, logger *zap.Logger) *Planner {
	if driver == nil {
		driver = search.NewBestFirstDriver(logger)
	}
	if cfg == (config.PlannerConfig{}) {
		cfg = config.DefaultPlannerConfig()
	}
	return &Planner{driver: driver, cfg: cfg, log: logging.Named(logger, logging.CategoryPlanner)}
}

// Plan turns each interpretation into a plan in turn, keeping whichever
// succeed; if none succeed the first captured error is returned
// (spec.md §4.4, §7).
func (p *Planner) Plan(ctx context.Context, interpretations []interpreter.Interpretation, world *worldmodel.State) ([][]string, error) {
	if p == nil {
		p = New(nil, config.DefaultPlannerConfig(), nil)
	}
	if err := world.Validate(); err != nil {
		return nil, err
	}
	if max := p.cfg.ColumnLimit(); world.NumColumns() > max {
		return nil, coreerrors.New(coreerrors.IllegalReference, "world has %d columns, exceeding the configured maximum of %d", world.NumColumns(), max)
	}

	var plans [][]string
	var firstErr error
	for _, interp := range interpretations {
		plan, err := p.planInterpretation(ctx, interp.DNF, world)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			p.log.Debugw("interpretation failed to plan", "error", err)
			continue
		}
		plans = append(plans, plan)
	}
	if len(plans) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, coreerrors.New(coreerrors.NoPlan, "no interpretations were supplied")
	}
	return plans, nil
}

func (p *Planner) planInterpretation(ctx context.Context, formula dnf.Formula, world *worldmodel.State) ([]string, error) {
	if formula.Empty() {
		return nil, coreerrors.New(coreerrors.NoInterpretation, "empty goal formula")
	}

	start := &stategraph.Node{State: world, LastAction: stategraph.ActionNone}
	if isSatisfied(start, formula) {
		return []string{AlreadyTrue}, nil
	}

	h := heuristic(formula, p.cfg.Combinator())
	isGoal := func(n *stategraph.Node) bool { return isSatisfied(n, formula) }

	result, err := p.driver.Search(ctx, stategraph.Successors, start, isGoal, h, p.cfg.Timeout())
	if err != nil {
		return nil, err
	}
	return renderPlan(result.Path), nil
}

// renderPlan walks a node path, emitting an utterance before any pick or
// drop action and the one-letter action code for every non-none action
// (spec.md §4.4).
func renderPlan(path []*stategraph.Node) []string {
	var out []string
	for i := 1; i < len(path); i++ {
		node := path[i]
		prev := path[i-1]
		switch node.LastAction {
		case stategraph.ActionPick:
			pickedID := node.State.Holding
			isLast := i == len(path)-1
			out = append(out, pickUtterance(prev, pickedID, isLast))
			out = append(out, string(stategraph.ActionPick))
		case stategraph.ActionDrop:
			droppedID := prev.State.Holding
			out = append(out, dropUtterance(node, droppedID))
			out = append(out, string(stategraph.ActionDrop))
		case stategraph.ActionLeft:
			out = append(out, string(stategraph.ActionLeft))
		case stategraph.ActionRight:
			out = append(out, string(stategraph.ActionRight))
		}
	}
	return out
}
