// Package stategraph defines the implicit search graph the planner
// explores: nodes are world snapshots, edges are the four primitive arm
// actions (pick, drop, left, right), each of uniform cost 1.
package stategraph

import (
	"github.com/mictra/shrdlite-course-project/internal/physics"
	"github.com/mictra/shrdlite-course-project/internal/worldmodel"
)

// Action names how a Node was reached. It is reconstruction metadata
// only: two nodes are equal iff their (Arm, Holding, Stacks) triple is
// equal, regardless of Action (spec.md §4.3).
type Action string

const (
	ActionNone  Action = ""
	ActionPick  Action = "p"
	ActionDrop  Action = "d"
	ActionLeft  Action = "l"
	ActionRight Action = "r"
)

// Node wraps a worldmodel.State with the action that produced it.
type Node struct {
	State      *worldmodel.State
	LastAction Action
}

// Equal compares two nodes by state identity only, per spec.md §4.3.
func (n *Node) Equal(other *Node) bool {
	return n.State.Equal(other.State)
}

// Key returns a closed-set key for n, built from State identity alone.
func (n *Node) Key() string { return n.State.CanonicalKey() }

// Edge is a successor node reached at unit cost.
type Edge struct {
	To   *Node
	Cost float64
}

// Successors generates n's outgoing edges in the fixed order pick,
// right, left, drop (spec.md §5's observable determinism). Every
// returned node's State is a deep copy; n's own State is never mutated.
func Successors(n *Node) []Edge {
	var edges []Edge

	if pick := tryPick(n); pick != nil {
		edges = append(edges, Edge{To: pick, Cost: 1})
	}
	if right := tryRight(n); right != nil {
		edges = append(edges, Edge{To: right, Cost: 1})
	}
	if left := tryLeft(n); left != nil {
		edges = append(edges, Edge{To: left, Cost: 1})
	}
	if drop := tryDrop(n); drop != nil {
		edges = append(edges, Edge{To: drop, Cost: 1})
	}
	return edges
}

func tryPick(n *Node) *Node {
	s := n.State
	if s.Holding != "" {
		return nil
	}
	col := s.Stacks[s.Arm]
	if len(col) == 0 {
		return nil
	}
	next := s.Clone()
	top := next.Stacks[next.Arm][len(next.Stacks[next.Arm])-1]
	next.Stacks[next.Arm] = next.Stacks[next.Arm][:len(next.Stacks[next.Arm])-1]
	next.Holding = top
	return &Node{State: next, LastAction: ActionPick}
}

func tryDrop(n *Node) *Node {
	s := n.State
	if s.Holding == "" {
		return nil
	}
	top := s.TopOf(s.Arm)
	if !physics.IsValidGoal(s, physics.Inside, s.Holding, top) && !physics.IsValidGoal(s, physics.OnTop, s.Holding, top) {
		return nil
	}
	next := s.Clone()
	next.Stacks[next.Arm] = append(next.Stacks[next.Arm], next.Holding)
	next.Holding = ""
	return &Node{State: next, LastAction: ActionDrop}
}

func tryLeft(n *Node) *Node {
	s := n.State
	if s.Arm <= 0 {
		return nil
	}
	next := s.Clone()
	next.Arm--
	return &Node{State: next, LastAction: ActionLeft}
}

func tryRight(n *Node) *Node {
	s := n.State
	if s.Arm >= s.NumColumns()-1 {
		return nil
	}
	next := s.Clone()
	next.Arm++
	return &Node{State: next, LastAction: ActionRight}
}
