package dnf_test

import (
	"testing"

	"github.com/mictra/shrdlite-course-project/internal/dnf"
	"github.com/mictra/shrdlite-course-project/internal/physics"
	"github.com/stretchr/testify/assert"
)

func TestHoldingLiteralString(t *testing.T) {
	lit := dnf.Holding("a")
	assert.Equal(t, "holding(a)", lit.String())
}

func TestBinaryLiteralString(t *testing.T) {
	lit := dnf.Binary(physics.Inside, "a", "b")
	assert.Equal(t, "inside(a, b)", lit.String())
}

func TestFormulaStringJoinsDisjuncts(t *testing.T) {
	f := dnf.Formula{
		dnf.Conjunction{dnf.Holding("a")},
		dnf.Conjunction{dnf.Binary(physics.OnTop, "a", "b")},
	}
	assert.Equal(t, "(holding(a)) | (ontop(a, b))", f.String())
}

func TestEmptyFormula(t *testing.T) {
	var f dnf.Formula
	assert.True(t, f.Empty())
	f = append(f, dnf.Conjunction{dnf.Holding("a")})
	assert.False(t, f.Empty())
}
