// Package physics implements the pure spatial-relation predicates and the
// goal-validity rules that encode the physical laws of the blocks world.
// Every function here is a pure function of a worldmodel.State (or of the
// raw column/position coordinates derived from one); nothing in this
// package mutates its input.
package physics

import "github.com/mictra/shrdlite-course-project/internal/worldmodel"

// Relation names one of the binary spatial relations (or the DNF's
// unary "holding" literal, which physics.IsValidGoal never receives
// since it has no (a, b) pair).
type Relation string

const (
	LeftOf  Relation = "leftof"
	RightOf Relation = "rightof"
	Beside  Relation = "beside"
	OnTop   Relation = "ontop"
	Inside  Relation = "inside"
	Above   Relation = "above"
	Under   Relation = "under"
)

// ColumnOf, HeightOf and AboveCount are re-exported as free functions
// over a State. The interpreter and planner call the corresponding
// worldmodel.State methods directly.
func ColumnOf(w *worldmodel.State, id string) (int, bool)  { return w.ColumnOf(id) }
func HeightOf(w *worldmodel.State, id string, col int) int { return w.HeightOf(id, col) }
func AboveCount(w *worldmodel.State, id string) int        { return w.AboveCount(id) }

// targetColumns resolves every target id (skipping any that are the
// floor sentinel or have no column) to its column index.
func targetColumns(w *worldmodel.State, targets []string) []int {
	cols := make([]int, 0, len(targets))
	for _, t := range targets {
		if t == worldmodel.Floor {
			continue
		}
		if col, ok := w.ColumnOf(t); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

func hasFloor(targets []string) bool {
	for _, t := range targets {
		if t == worldmodel.Floor {
			return true
		}
	}
	return false
}

// IsLeftOf holds iff the subject's column col is strictly left of some
// target's column: some target lies strictly right of col.
func IsLeftOf(w *worldmodel.State, targets []string, col int) bool {
	for _, tc := range targetColumns(w, targets) {
		if col < tc {
			return true
		}
	}
	return false
}

// IsRightOf holds iff some target lies strictly left of col.
func IsRightOf(w *worldmodel.State, targets []string, col int) bool {
	for _, tc := range targetColumns(w, targets) {
		if col > tc {
			return true
		}
	}
	return false
}

// IsBeside holds iff some target lies in column col-1 or col+1.
func IsBeside(w *worldmodel.State, targets []string, col int) bool {
	for _, tc := range targetColumns(w, targets) {
		if tc == col-1 || tc == col+1 {
			return true
		}
	}
	return false
}

// IsOnTop holds iff some target sits exactly at (col, pos); if targets
// is exactly {floor}, it holds iff pos < 0.
func IsOnTop(w *worldmodel.State, targets []string, col, pos int) bool {
	if hasFloor(targets) {
		if pos < 0 {
			return true
		}
	}
	for _, t := range targets {
		if t == worldmodel.Floor {
			continue
		}
		tc, ok := w.ColumnOf(t)
		if !ok || tc != col {
			continue
		}
		if w.HeightOf(t, tc) == pos {
			return true
		}
	}
	return false
}

// IsInside behaves like IsOnTop but only ever true when the matching
// target's form is a box, and is never true for the floor.
func IsInside(w *worldmodel.State, targets []string, col, pos int) bool {
	for _, t := range targets {
		if t == worldmodel.Floor {
			continue
		}
		tc, ok := w.ColumnOf(t)
		if !ok || tc != col {
			continue
		}
		if w.HeightOf(t, tc) != pos {
			continue
		}
		attrs, ok := w.Attributes(t)
		if ok && attrs.Form == worldmodel.FormBox {
			return true
		}
	}
	return false
}

// IsAbove holds iff some target lies in column col at a position
// strictly below pos; if targets is exactly {floor}, always true.
func IsAbove(w *worldmodel.State, targets []string, col, pos int) bool {
	if hasFloor(targets) {
		return true
	}
	for _, t := range targets {
		if t == worldmodel.Floor {
			continue
		}
		tc, ok := w.ColumnOf(t)
		if !ok || tc != col {
			continue
		}
		if w.HeightOf(t, tc) < pos {
			return true
		}
	}
	return false
}

// IsUnder holds iff some target lies in column col at a position >=
// pos; never true for the floor.
func IsUnder(w *worldmodel.State, targets []string, col, pos int) bool {
	for _, t := range targets {
		if t == worldmodel.Floor {
			continue
		}
		tc, ok := w.ColumnOf(t)
		if !ok || tc != col {
			continue
		}
		if w.HeightOf(t, tc) >= pos {
			return true
		}
	}
	return false
}

// Holds dispatches to the predicate matching relation, anchored at
// (col, pos). This is the single dispatch table shared by entity
// resolution (spec.md §4.2) and goal-predicate evaluation (§4.4): both
// sites anchor at a subject's actual or candidate coordinate and ask
// whether the relation holds against a target set.
func Holds(w *worldmodel.State, relation Relation, targets []string, col, pos int) bool {
	switch relation {
	case LeftOf:
		return IsLeftOf(w, targets, col)
	case RightOf:
		return IsRightOf(w, targets, col)
	case Beside:
		return IsBeside(w, targets, col)
	case Inside:
		return IsInside(w, targets, col, pos-1)
	case OnTop:
		return IsOnTop(w, targets, col, pos-1)
	case Above:
		return IsAbove(w, targets, col, pos)
	case Under:
		return IsUnder(w, targets, col, pos+1)
	default:
		return false
	}
}
