package shrdlite_test

import (
	"context"
	"testing"

	"github.com/mictra/shrdlite-course-project/pkg/shrdlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end run of spec.md §8 scenario 1: "put the white ball inside
// the red box", exercised entirely through the public package.
func TestRunPutWhiteBallInsideRedBox(t *testing.T) {
	world := &shrdlite.WorldState{
		Arm:     2,
		Holding: "a",
		Stacks:  [][]string{{}, {}, {"b"}},
		Objects: map[string]shrdlite.Object{
			"a": {Form: "ball", Size: "small", Color: "white"},
			"b": {Form: "box", Size: "large", Color: "red"},
		},
	}
	cmd := shrdlite.Command{
		Kind: shrdlite.Put,
		Location: &shrdlite.Location{
			Relation: shrdlite.Inside,
			Entity:   &shrdlite.Entity{Object: shrdlite.Object{Form: "box", Color: "red"}},
		},
	}

	core := shrdlite.New(shrdlite.Config{})
	plan, err := core.Run(context.Background(), []shrdlite.ParseResult{{Command: cmd}}, world)
	require.NoError(t, err)

	var codes []string
	for _, step := range plan {
		switch step {
		case "p", "d", "l", "r":
			codes = append(codes, step)
		}
	}
	assert.Equal(t, []string{"d"}, codes)
}

func TestRunReportsErrorWhenNoParseInterprets(t *testing.T) {
	world := &shrdlite.WorldState{Arm: 0, Stacks: [][]string{{}}, Objects: map[string]shrdlite.Object{}}
	cmd := shrdlite.Command{Kind: shrdlite.Take, Entity: &shrdlite.Entity{Object: shrdlite.Object{Form: "ball"}}}

	core := shrdlite.New(shrdlite.Config{})
	_, err := core.Run(context.Background(), []shrdlite.ParseResult{{Command: cmd}}, world)
	require.Error(t, err)
}

func TestInterpretAndPlanCanBeCalledSeparately(t *testing.T) {
	world := &shrdlite.WorldState{
		Arm:    0,
		Stacks: [][]string{{"a"}, {}, {"b"}},
		Objects: map[string]shrdlite.Object{
			"a": {Form: "brick", Size: "small"},
			"b": {Form: "box", Size: "large", Color: "red"},
		},
	}
	cmd := shrdlite.Command{Kind: shrdlite.Take, Entity: &shrdlite.Entity{Object: shrdlite.Object{Form: "box", Color: "red"}}}

	core := shrdlite.New(shrdlite.Config{})
	interpretations, err := core.Interpret([]shrdlite.ParseResult{{Command: cmd}}, world)
	require.NoError(t, err)
	require.Len(t, interpretations, 1)

	plans, err := core.Plan(context.Background(), interpretations, world)
	require.NoError(t, err)
	require.Len(t, plans, 1)
}
