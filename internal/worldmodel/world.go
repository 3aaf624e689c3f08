// Package worldmodel defines the passive data shared by the interpreter
// and planner: object attributes, stacks of objects, and the arm/holding
// state of a blocks-world snapshot. Nothing in this package mutates a
// WorldState that was not itself produced by this package.
package worldmodel

import (
	"fmt"
	"strings"

	"github.com/mictra/shrdlite-course-project/internal/coreerrors"
)

// Floor is the sentinel id present in every column at a conceptual
// position of -1. It never appears in Objects and never occupies a
// Stacks slot.
const Floor = "floor"

// Form enumerates the physical shapes an object can take.
type Form string

const (
	FormBrick   Form = "brick"
	FormPlank   Form = "plank"
	FormBall    Form = "ball"
	FormBox     Form = "box"
	FormPyramid Form = "pyramid"
	FormTable   Form = "table"
	FormFloor   Form = "floor"
	// FormAny matches any form during attribute-based resolution; it is
	// never an attribute of a real object in Objects.
	FormAny Form = "anyform"
)

// Size enumerates the two sizes an object may declare.
type Size string

const (
	SizeSmall Size = "small"
	SizeLarge Size = "large"
	// SizeAny matches any size during attribute-based resolution.
	SizeAny Size = ""
)

// Object describes the fixed attributes of a single block-world id. An
// unspecified Color or SizeAny matches any value during resolution.
type Object struct {
	Form  Form   `yaml:"form" json:"form"`
	Size  Size   `yaml:"size,omitempty" json:"size,omitempty"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// None is the Holding value meaning "no object held"; it is the empty
// string, Go's zero value for ids. Missing columns and positions are
// reported as NonePos instead.
const None = ""

// NonePos is returned by HeightOf and friends when there is no answer.
const NonePos = -1

// State is an immutable (by convention) snapshot of the blocks world.
// Callers must never mutate a State handed to the interpreter or
// planner; both packages only ever build new States.
type State struct {
	// Arm is the column index the gripper currently hovers over.
	Arm int `yaml:"arm" json:"arm"`

	// Holding is the id of the object currently grasped, or None.
	Holding string `yaml:"holding,omitempty" json:"holding,omitempty"`

	// Stacks holds, for each column, the ids from bottom (index 0) to
	// top (last index).
	Stacks [][]string `yaml:"stacks" json:"stacks"`

	// Objects maps every non-floor id to its attributes.
	Objects map[string]Object `yaml:"objects" json:"objects"`
}

// NumColumns reports len(Stacks).
func (s *State) NumColumns() int { return len(s.Stacks) }

// ColumnOf returns the column index holding id, or NonePos and false if
// id is not resting in any column (it may be held, be the floor, or not exist).
func (s *State) ColumnOf(id string) (int, bool) {
	if id == Floor {
		return NonePos, false
	}
	for col, stack := range s.Stacks {
		for _, occupant := range stack {
			if occupant == id {
				return col, true
			}
		}
	}
	return NonePos, false
}

// HeightOf returns the 0-based position of id within column col, bottom
// first, or NonePos if id is not in that column.
func (s *State) HeightOf(id string, col int) int {
	if col < 0 || col >= len(s.Stacks) {
		return NonePos
	}
	for pos, occupant := range s.Stacks[col] {
		if occupant == id {
			return pos
		}
	}
	return NonePos
}

// AboveCount returns the number of objects stacked above id in its
// column, or 0 if id has no column (floor, held, or unknown).
func (s *State) AboveCount(id string) int {
	col, ok := s.ColumnOf(id)
	if !ok {
		return 0
	}
	pos := s.HeightOf(id, col)
	if pos == NonePos {
		return 0
	}
	return len(s.Stacks[col]) - pos - 1
}

// TopOf returns the id at the top of column col, or Floor if the column
// is empty.
func (s *State) TopOf(col int) string {
	if col < 0 || col >= len(s.Stacks) {
		return Floor
	}
	stack := s.Stacks[col]
	if len(stack) == 0 {
		return Floor
	}
	return stack[len(stack)-1]
}

// Attributes looks up id's declared attributes. The floor has no
// attributes and ok is false for it.
func (s *State) Attributes(id string) (Object, bool) {
	if id == Floor {
		return Object{}, false
	}
	obj, ok := s.Objects[id]
	return obj, ok
}

// Clone performs a deep copy of the stack structure (and shares the
// read-only Objects map, which nothing ever mutates after construction).
// Successor generation in internal/stategraph relies on this to avoid
// aliasing a parent node's storage.
func (s *State) Clone() *State {
	stacks := make([][]string, len(s.Stacks))
	for i, col := range s.Stacks {
		cloned := make([]string, len(col))
		copy(cloned, col)
		stacks[i] = cloned
	}
	return &State{
		Arm:     s.Arm,
		Holding: s.Holding,
		Stacks:  stacks,
		Objects: s.Objects,
	}
}

// Validate checks the structural invariants from the data model: every
// non-floor id appears in at most one place (a stack slot or Holding,
// never both or twice), the arm is in range, and no id referenced from
// Stacks is missing attributes.
func (s *State) Validate() error {
	if s.Arm < 0 || s.Arm >= len(s.Stacks) {
		return coreerrors.New(coreerrors.IllegalReference, "arm column %d out of range [0,%d)", s.Arm, len(s.Stacks))
	}
	seen := make(map[string]string, len(s.Objects))
	if s.Holding != "" {
		if s.Holding == Floor {
			return coreerrors.New(coreerrors.IllegalReference, "holding cannot be the floor sentinel")
		}
		seen[s.Holding] = "holding"
	}
	for col, stack := range s.Stacks {
		for pos, id := range stack {
			if id == Floor {
				return coreerrors.New(coreerrors.IllegalReference, "floor sentinel may not occupy stack %d position %d", col, pos)
			}
			if where, dup := seen[id]; dup {
				return coreerrors.New(coreerrors.IllegalReference, "id %q appears in both %s and stack %d", id, where, col)
			}
			seen[id] = fmt.Sprintf("stack %d", col)
			if _, ok := s.Objects[id]; !ok {
				return coreerrors.New(coreerrors.IllegalReference, "id %q in stack %d has no declared attributes", id, col)
			}
		}
	}
	return nil
}

// CanonicalKey returns a structural encoding of (Arm, Holding, Stacks)
// suitable for closed-set membership in the search driver. lastAction is
// deliberately excluded: it is reconstruction metadata, not part of node
// identity (spec.md §4.3). The encoding escapes the "|" and "," field
// separators so object ids containing them cannot collide.
func (s *State) CanonicalKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%s|", s.Arm, escape(s.Holding))
	for _, col := range s.Stacks {
		b.WriteByte('[')
		for i, id := range col {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape(id))
		}
		b.WriteByte(']')
	}
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "|", "\\p")
	s = strings.ReplaceAll(s, ",", "\\c")
	s = strings.ReplaceAll(s, "[", "\\b")
	s = strings.ReplaceAll(s, "]", "\\e")
	return s
}

// Equal reports whether two states have the same Arm, Holding and Stacks
// (the StateGraph node-equality notion from spec.md §4.3). lastAction is
// not part of this package's State type at all; it lives alongside the
// node wrapper in internal/stategraph.
func (s *State) Equal(other *State) bool {
	return s.CanonicalKey() == other.CanonicalKey()
}
