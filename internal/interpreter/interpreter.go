// Package interpreter resolves linguistic entity references against a
// worldmodel.State and emits a DNF goal formula for each command the
// upstream parser produced. Nothing here mutates the world or the parse
// trees it is handed.
package interpreter

import (
	"github.com/mictra/shrdlite-course-project/internal/coreerrors"
	"github.com/mictra/shrdlite-course-project/internal/dnf"
	"github.com/mictra/shrdlite-course-project/internal/logging"
	"github.com/mictra/shrdlite-course-project/internal/parsetree"
	"github.com/mictra/shrdlite-course-project/internal/physics"
	"github.com/mictra/shrdlite-course-project/internal/worldmodel"
	"go.uber.org/zap"
)

// Interpretation pairs one candidate parse with the DNF formula it
// produced.
type Interpretation struct {
	Parse parsetree.ParseResult
	DNF   dnf.Formula
}

// Interpreter resolves parses against a fixed world. It holds nothing
// but a logger, so a zero-value Interpreter{} (or nil) works fine.
type Interpreter struct {
	log *zap.SugaredLogger
}

// New builds an Interpreter that logs through the given zap.Logger (nil
// is accepted and discards all output).
func New(base *zap.Logger) *Interpreter {
	return &Interpreter{log: logging.Named(base, logging.CategoryInterpreter)}
}

// Interpret attempts interpretCommand against every candidate parse and
// keeps whichever succeed. If none succeed, the first captured error is
// returned (spec.md §4.2, §7).
func (in *Interpreter) Interpret(parses []parsetree.ParseResult, world *worldmodel.State) ([]Interpretation, error) {
	if in == nil || in.log == nil {
		in = New(nil)
	}
	if err := world.Validate(); err != nil {
		return nil, err
	}

	var results []Interpretation
	var firstErr error
	for _, p := range parses {
		formula, err := in.interpretCommand(p.Command, world)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			in.log.Debugw("parse rejected", "kind", p.Command.Kind, "error", err)
			continue
		}
		results = append(results, Interpretation{Parse: p, DNF: formula})
	}
	if len(results) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, coreerrors.New(coreerrors.NoInterpretation, "no parses were supplied")
	}
	return results, nil
}

func (in *Interpreter) interpretCommand(cmd parsetree.Command, world *worldmodel.State) (dnf.Formula, error) {
	switch cmd.Kind {
	case parsetree.KindTake:
		return in.interpretTake(cmd, world)
	case parsetree.KindMove:
		return in.interpretMove(cmd, world)
	case parsetree.KindPut:
		return in.interpretPut(cmd, world)
	default:
		return nil, coreerrors.New(coreerrors.NoInterpretation, "unknown command kind %q", cmd.Kind)
	}
}

func (in *Interpreter) interpretTake(cmd parsetree.Command, world *worldmodel.State) (dnf.Formula, error) {
	subjects, err := resolveEntity(world, cmd.Entity)
	if err != nil {
		return nil, err
	}
	var formula dnf.Formula
	for _, id := range subjects {
		if id == worldmodel.Floor {
			continue
		}
		formula = append(formula, dnf.Conjunction{dnf.Holding(id)})
	}
	if len(formula) == 0 {
		return nil, coreerrors.New(coreerrors.NoInterpretation, "\"take\" matched no object the arm can hold")
	}
	return formula, nil
}

func (in *Interpreter) interpretMove(cmd parsetree.Command, world *worldmodel.State) (dnf.Formula, error) {
	subjects, err := resolveEntity(world, cmd.Entity)
	if err != nil {
		return nil, err
	}
	targets, err := resolveEntity(world, cmd.Location.Entity)
	if err != nil {
		return nil, err
	}
	relation := relationFromWord(cmd.Location.Relation)

	var formula dnf.Formula
	for _, a := range subjects {
		for _, b := range targets {
			if physics.IsValidGoal(world, relation, a, b) {
				formula = append(formula, dnf.Conjunction{dnf.Binary(relation, a, b)})
			}
		}
	}
	if len(formula) == 0 {
		return nil, coreerrors.New(coreerrors.NoInterpretation, "\"move\" produced no physically valid literal")
	}
	return formula, nil
}

func (in *Interpreter) interpretPut(cmd parsetree.Command, world *worldmodel.State) (dnf.Formula, error) {
	held := world.Holding
	if held == "" {
		return nil, coreerrors.New(coreerrors.NoInterpretation, "\"put\" requires the arm to be holding something")
	}
	targets, err := resolveEntity(world, cmd.Location.Entity)
	if err != nil {
		return nil, err
	}
	relation := relationFromWord(cmd.Location.Relation)

	var formula dnf.Formula
	for _, b := range targets {
		if physics.IsValidGoal(world, relation, held, b) {
			formula = append(formula, dnf.Conjunction{dnf.Binary(relation, held, b)})
		}
	}
	if len(formula) == 0 {
		return nil, coreerrors.New(coreerrors.NoInterpretation, "\"put\" produced no physically valid literal")
	}
	return formula, nil
}

func relationFromWord(w parsetree.RelationWord) physics.Relation {
	switch w {
	case parsetree.RelLeftOf:
		return physics.LeftOf
	case parsetree.RelRightOf:
		return physics.RightOf
	case parsetree.RelBeside:
		return physics.Beside
	case parsetree.RelInside:
		return physics.Inside
	case parsetree.RelOnTop:
		return physics.OnTop
	case parsetree.RelAbove:
		return physics.Above
	case parsetree.RelUnder:
		return physics.Under
	default:
		return physics.Relation(w)
	}
}

// resolveEntity returns the set of ids matching e, following spec.md
// §4.2. Relative clauses recurse to arbitrary depth (design note §9):
// each level strips its own Location and resolves the remainder, then
// filters by the spatial predicate named at that level.
func resolveEntity(world *worldmodel.State, e *parsetree.Entity) ([]string, error) {
	if e == nil {
		return nil, coreerrors.New(coreerrors.IllegalReference, "nil entity")
	}
	if e.IsFloor() {
		if e.Location != nil {
			return nil, coreerrors.New(coreerrors.IllegalReference, "the floor cannot carry a relative clause")
		}
		return []string{worldmodel.Floor}, nil
	}

	if e.Location != nil {
		inner := &parsetree.Entity{Object: e.Object}
		candidates, err := resolveEntity(world, inner)
		if err != nil {
			return nil, err
		}
		relatives, err := resolveEntity(world, e.Location.Entity)
		if err != nil {
			return nil, err
		}
		relation := relationFromWord(e.Location.Relation)

		var kept []string
		for _, c := range candidates {
			col, ok := world.ColumnOf(c)
			if !ok {
				// Held objects are not in any stack and are therefore
				// not referenceable here; this matches source
				// behaviour (spec.md §9) and is intentionally not
				// "fixed" for put-then-describe phrasing.
				continue
			}
			pos := world.HeightOf(c, col)
			if physics.Holds(world, relation, relatives, col, pos) {
				kept = append(kept, c)
			}
		}
		return kept, nil
	}

	var result []string
	for col := range world.Stacks {
		for pos := range world.Stacks[col] {
			id := world.Stacks[col][pos]
			attrs, ok := world.Attributes(id)
			if !ok {
				continue
			}
			if matchesObject(attrs, e.Object) {
				result = append(result, id)
			}
		}
	}
	return result, nil
}

func matchesObject(attrs worldmodel.Object, spec worldmodel.Object) bool {
	if spec.Form != worldmodel.FormAny && spec.Form != "" && spec.Form != attrs.Form {
		return false
	}
	if spec.Size != worldmodel.SizeAny && spec.Size != attrs.Size {
		return false
	}
	if spec.Color != "" && spec.Color != attrs.Color {
		return false
	}
	return true
}
