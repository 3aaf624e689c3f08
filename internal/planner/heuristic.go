package planner

import (
	"math"

	"github.com/mictra/shrdlite-course-project/internal/config"
	"github.com/mictra/shrdlite-course-project/internal/dnf"
	"github.com/mictra/shrdlite-course-project/internal/physics"
	"github.com/mictra/shrdlite-course-project/internal/stategraph"
)

// literalSatisfied reports whether lit already holds in n. This is the
// single satisfaction check shared by the goal predicate and the
// heuristic's per-literal short-circuit (spec.md §4.4: "Return 0
// immediately if any literal is already satisfied").
func literalSatisfied(n *stategraph.Node, lit dnf.Literal) bool {
	s := n.State
	if lit.Relation == dnf.HoldingRelation {
		return lit.Args[0] == s.Holding
	}
	a, b := lit.Args[0], lit.Args[1]
	col, ok := s.ColumnOf(a)
	if !ok {
		return false
	}
	pos := s.HeightOf(a, col)
	return physics.Holds(s, lit.Relation, []string{b}, col, pos)
}

// conjunctionSatisfied reports whether every literal in c holds in n.
func conjunctionSatisfied(n *stategraph.Node, c dnf.Conjunction) bool {
	for _, lit := range c {
		if !literalSatisfied(n, lit) {
			return false
		}
	}
	return true
}

// isSatisfied reports whether the DNF formula holds in n: some
// conjunction with every literal satisfied.
func isSatisfied(n *stategraph.Node, formula dnf.Formula) bool {
	for _, c := range formula {
		if conjunctionSatisfied(n, c) {
			return true
		}
	}
	return false
}

func reach(n *stategraph.Node, id string) float64 {
	col, ok := n.State.ColumnOf(id)
	if !ok {
		// id is held (or otherwise columnless): the arm is already at
		// it, so 0 is the admissible (never overestimating) choice.
		return 0
	}
	return math.Abs(float64(n.State.Arm - col))
}

func above(n *stategraph.Node, id string) float64 {
	return float64(n.State.AboveCount(id))
}

func span(n *stategraph.Node, a, b string) float64 {
	colA, okA := n.State.ColumnOf(a)
	colB, okB := n.State.ColumnOf(b)
	if !okA || !okB {
		return 0
	}
	return math.Abs(float64(colA - colB))
}

// literalEstimate computes the per-relation estimate from spec.md
// §4.4's table, or 0 if lit is already satisfied in n.
func literalEstimate(n *stategraph.Node, lit dnf.Literal) float64 {
	if literalSatisfied(n, lit) {
		return 0
	}
	if lit.Relation == dnf.HoldingRelation {
		a := lit.Args[0]
		return 4*above(n, a) + reach(n, a)
	}

	a, b := lit.Args[0], lit.Args[1]
	switch lit.Relation {
	case physics.Inside, physics.OnTop:
		return 3*(above(n, a)+above(n, b)) + reach(n, a) + reach(n, b)
	case physics.Under:
		return 4*above(n, b) + span(n, a, b) + reach(n, b)
	case physics.Above:
		return 4*above(n, a) + span(n, a, b) + reach(n, a)
	case physics.LeftOf, physics.RightOf:
		return 4*above(n, a) + span(n, a, b) + reach(n, a)
	case physics.Beside:
		return 4*above(n, a) + span(n, a, b) + reach(n, a) - 1
	default:
		return 0
	}
}

// conjunctionEstimate combines per-literal estimates per the configured
// combinator: CombinatorLast (source fidelity; takes only the final
// literal's estimate) or CombinatorMax (admissible and more informative).
func conjunctionEstimate(n *stategraph.Node, c dnf.Conjunction, combinator config.HeuristicCombinator) float64 {
	if len(c) == 0 {
		return 0
	}
	if combinator == config.CombinatorMax {
		var max float64
		for i, lit := range c {
			e := literalEstimate(n, lit)
			if i == 0 || e > max {
				max = e
			}
		}
		return max
	}
	return literalEstimate(n, c[len(c)-1])
}

// heuristic returns the admissible estimate of the remaining action
// count to satisfy formula from n: the minimum conjunction estimate.
func heuristic(formula dnf.Formula, combinator config.HeuristicCombinator) func(*stategraph.Node) float64 {
	return func(n *stategraph.Node) float64 {
		if isSatisfied(n, formula) {
			return 0
		}
		best := math.Inf(1)
		for _, c := range formula {
			e := conjunctionEstimate(n, c, combinator)
			if e < best {
				best = e
			}
		}
		if math.IsInf(best, 1) {
			return 0
		}
		return best
	}
}
