package worldmodel_test

import (
	"testing"

	"github.com/mictra/shrdlite-course-project/internal/worldmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWorld() *worldmodel.State {
	return &worldmodel.State{
		Arm:     0,
		Holding: "",
		Stacks: [][]string{
			{"a"},
			{},
			{"b"},
		},
		Objects: map[string]worldmodel.Object{
			"a": {Form: worldmodel.FormBall, Size: worldmodel.SizeSmall, Color: "white"},
			"b": {Form: worldmodel.FormBox, Size: worldmodel.SizeLarge, Color: "red"},
		},
	}
}

func TestColumnAndHeight(t *testing.T) {
	w := sampleWorld()

	col, ok := w.ColumnOf("a")
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, w.HeightOf("a", col))

	col, ok = w.ColumnOf("b")
	require.True(t, ok)
	assert.Equal(t, 2, col)

	_, ok = w.ColumnOf(worldmodel.Floor)
	assert.False(t, ok)

	_, ok = w.ColumnOf("missing")
	assert.False(t, ok)
}

func TestTopOfEmptyColumnIsFloor(t *testing.T) {
	w := sampleWorld()
	assert.Equal(t, worldmodel.Floor, w.TopOf(1))
	assert.Equal(t, "a", w.TopOf(0))
}

func TestCloneDoesNotAliasParent(t *testing.T) {
	w := sampleWorld()
	clone := w.Clone()
	clone.Stacks[0] = append(clone.Stacks[0], "b")

	assert.Len(t, w.Stacks[0], 1, "mutating the clone must not affect the parent")
	assert.Len(t, clone.Stacks[0], 2)
}

func TestCanonicalKeyIgnoresNothingButIdentity(t *testing.T) {
	w1 := sampleWorld()
	w2 := sampleWorld()
	assert.Equal(t, w1.CanonicalKey(), w2.CanonicalKey())

	w2.Arm = 1
	assert.NotEqual(t, w1.CanonicalKey(), w2.CanonicalKey())
}

func TestCanonicalKeyEscapesDelimiters(t *testing.T) {
	w1 := &worldmodel.State{
		Arm:    0,
		Stacks: [][]string{{"a,b"}, {"c"}},
		Objects: map[string]worldmodel.Object{
			"a,b": {Form: worldmodel.FormBrick},
			"c":   {Form: worldmodel.FormBrick},
		},
	}
	w2 := &worldmodel.State{
		Arm:    0,
		Stacks: [][]string{{"a"}, {"b,c"}},
		Objects: map[string]worldmodel.Object{
			"a":   {Form: worldmodel.FormBrick},
			"b,c": {Form: worldmodel.FormBrick},
		},
	}
	assert.NotEqual(t, w1.CanonicalKey(), w2.CanonicalKey(), "ids containing the delimiter must not collide across column boundaries")
}

func TestValidateRejectsDuplicateID(t *testing.T) {
	w := &worldmodel.State{
		Arm:    0,
		Stacks: [][]string{{"a", "a"}},
		Objects: map[string]worldmodel.Object{
			"a": {Form: worldmodel.FormBrick},
		},
	}
	err := w.Validate()
	require.Error(t, err)
}

func TestValidateRejectsHoldingAndStackedSameID(t *testing.T) {
	w := &worldmodel.State{
		Arm:     0,
		Holding: "a",
		Stacks:  [][]string{{"a"}},
		Objects: map[string]worldmodel.Object{
			"a": {Form: worldmodel.FormBrick},
		},
	}
	require.Error(t, w.Validate())
}

func TestValidateRejectsFloorInStack(t *testing.T) {
	w := &worldmodel.State{
		Arm:     0,
		Stacks:  [][]string{{worldmodel.Floor}},
		Objects: map[string]worldmodel.Object{},
	}
	require.Error(t, w.Validate())
}

func TestValidateAcceptsWellFormedWorld(t *testing.T) {
	require.NoError(t, sampleWorld().Validate())
}

func TestAboveCount(t *testing.T) {
	w := &worldmodel.State{
		Arm:    0,
		Stacks: [][]string{{"a", "b", "c"}},
		Objects: map[string]worldmodel.Object{
			"a": {Form: worldmodel.FormBrick},
			"b": {Form: worldmodel.FormBrick},
			"c": {Form: worldmodel.FormBrick},
		},
	}
	assert.Equal(t, 2, w.AboveCount("a"))
	assert.Equal(t, 1, w.AboveCount("b"))
	assert.Equal(t, 0, w.AboveCount("c"))
	assert.Equal(t, 0, w.AboveCount("nonexistent"))
}
