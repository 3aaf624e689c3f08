// Package dnf defines the disjunctive-normal-form goal formula the
// interpreter emits and the planner consumes: an ordered list of
// conjunctions, each an ordered list of literals.
package dnf

import (
	"fmt"
	"strings"

	"github.com/mictra/shrdlite-course-project/internal/physics"
)

// HoldingRelation is the unary pseudo-relation used by "take"
// literals; it is not one of physics.Relation's binary relations because
// a Literal with this relation carries exactly one argument.
const HoldingRelation physics.Relation = "holding"

// Literal is a single polarity-tagged relation applied to arguments.
// Polarity is always true in this implementation: spec.md's parse tree
// and command grammar never produce a negated literal, but the field is
// kept so a future parser extension (e.g. "not") has somewhere to land.
type Literal struct {
	Polarity bool
	Relation physics.Relation
	Args     []string
}

// Holding builds the singleton literal used by "take" commands.
func Holding(id string) Literal {
	return Literal{Polarity: true, Relation: HoldingRelation, Args: []string{id}}
}

// Binary builds a two-argument literal used by "move"/"put" commands.
func Binary(relation physics.Relation, a, b string) Literal {
	return Literal{Polarity: true, Relation: relation, Args: []string{a, b}}
}

func (l Literal) String() string {
	return fmt.Sprintf("%s(%s)", l.Relation, strings.Join(l.Args, ", "))
}

// Conjunction is an ordered, non-empty list of literals that must all
// hold simultaneously.
type Conjunction []Literal

func (c Conjunction) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return strings.Join(parts, " & ")
}

// Formula is an ordered list of conjunctions; it is satisfied iff any
// conjunction is satisfied.
type Formula []Conjunction

func (f Formula) String() string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = "(" + c.String() + ")"
	}
	return strings.Join(parts, " | ")
}

// Empty reports whether the formula has no disjuncts at all.
func (f Formula) Empty() bool { return len(f) == 0 }
