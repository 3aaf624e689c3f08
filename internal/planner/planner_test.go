package planner_test

import (
	"context"
	"testing"

	"github.com/mictra/shrdlite-course-project/internal/config"
	"github.com/mictra/shrdlite-course-project/internal/coreerrors"
	"github.com/mictra/shrdlite-course-project/internal/dnf"
	"github.com/mictra/shrdlite-course-project/internal/interpreter"
	"github.com/mictra/shrdlite-course-project/internal/physics"
	"github.com/mictra/shrdlite-course-project/internal/planner"
	"github.com/mictra/shrdlite-course-project/internal/worldmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brick(size worldmodel.Size) worldmodel.Object {
	return worldmodel.Object{Form: worldmodel.FormBrick, Size: size}
}

func box(size worldmodel.Size, color string) worldmodel.Object {
	return worldmodel.Object{Form: worldmodel.FormBox, Size: size, Color: color}
}

// spec.md §8 scenario 5: the goal already holds, so the plan is the
// single "That is already true!" utterance with no action codes.
func TestPlanAlreadySatisfiedGoalShortCircuits(t *testing.T) {
	world := &worldmodel.State{
		Arm:    0,
		Stacks: [][]string{{"a"}},
		Objects: map[string]worldmodel.Object{
			"a": brick(worldmodel.SizeSmall),
		},
	}
	p := planner.New(nil, config.DefaultPlannerConfig(), nil)
	goal := dnf.Formula{dnf.Conjunction{dnf.Binary(physics.OnTop, "a", worldmodel.Floor)}}
	plans, err := p.Plan(context.Background(), []interpreter.Interpretation{{DNF: goal}}, world)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, []string{planner.AlreadyTrue}, plans[0])
}

// spec.md §8 scenario 2: "take the red box" two columns away requires
// two "r" moves followed by a pick.
func TestPlanMovesRightTwiceThenPicks(t *testing.T) {
	world := &worldmodel.State{
		Arm:    0,
		Stacks: [][]string{{"a"}, {}, {"b"}},
		Objects: map[string]worldmodel.Object{
			"a": brick(worldmodel.SizeSmall),
			"b": box(worldmodel.SizeLarge, "red"),
		},
	}
	formula := dnf.Formula{dnf.Conjunction{dnf.Holding("b")}}
	p := planner.New(nil, config.DefaultPlannerConfig(), nil)
	plans, err := p.Plan(context.Background(), []interpreter.Interpretation{{DNF: formula}}, world)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	var codes []string
	for _, step := range plans[0] {
		if step == "r" || step == "l" || step == "p" || step == "d" {
			codes = append(codes, step)
		}
	}
	assert.Equal(t, []string{"r", "r", "p"}, codes)
}

func TestPlanWithNoInterpretationsReturnsError(t *testing.T) {
	world := &worldmodel.State{
		Arm:     0,
		Stacks:  [][]string{{}},
		Objects: map[string]worldmodel.Object{},
	}
	p := planner.New(nil, config.DefaultPlannerConfig(), nil)
	_, err := p.Plan(context.Background(), nil, world)
	require.Error(t, err)
}

func TestPlanPropagatesInvalidWorld(t *testing.T) {
	world := &worldmodel.State{Arm: 5, Stacks: [][]string{{}}}
	p := planner.New(nil, config.DefaultPlannerConfig(), nil)
	formula := dnf.Formula{dnf.Conjunction{dnf.Holding("a")}}
	_, err := p.Plan(context.Background(), []interpreter.Interpretation{{DNF: formula}}, world)
	require.Error(t, err)
}

func TestPlanRejectsWorldExceedingMaxColumns(t *testing.T) {
	world := &worldmodel.State{
		Arm:     0,
		Stacks:  [][]string{{}, {}, {}},
		Objects: map[string]worldmodel.Object{},
	}
	cfg := config.DefaultPlannerConfig()
	cfg.MaxColumns = 2
	p := planner.New(nil, cfg, nil)
	formula := dnf.Formula{dnf.Conjunction{dnf.Holding("a")}}
	_, err := p.Plan(context.Background(), []interpreter.Interpretation{{DNF: formula}}, world)
	require.Error(t, err)
	assert.True(t, coreerrors.Is(err, coreerrors.IllegalReference))
}

// The CombinatorMax path must still reach the optimal plan, not merely
// an admissible-but-lossy one, when every literal's estimate agrees.
func TestPlanWithMaxCombinatorStillFindsShortestPlan(t *testing.T) {
	world := &worldmodel.State{
		Arm:    0,
		Stacks: [][]string{{"a"}, {}, {"b"}},
		Objects: map[string]worldmodel.Object{
			"a": brick(worldmodel.SizeSmall),
			"b": box(worldmodel.SizeLarge, "red"),
		},
	}
	cfg := config.DefaultPlannerConfig()
	cfg.HeuristicCombinator = config.CombinatorMax
	p := planner.New(nil, cfg, nil)
	formula := dnf.Formula{dnf.Conjunction{dnf.Holding("b")}}
	plans, err := p.Plan(context.Background(), []interpreter.Interpretation{{DNF: formula}}, world)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	var codes []string
	for _, step := range plans[0] {
		if step == "r" || step == "l" || step == "p" || step == "d" {
			codes = append(codes, step)
		}
	}
	assert.Equal(t, []string{"r", "r", "p"}, codes)
}
