package physics

import "github.com/mictra/shrdlite-course-project/internal/worldmodel"

// IsValidGoal reports whether the literal relation(a, b) can physically
// hold, independent of the current world state. This is the pruning rule
// applied to every candidate literal the interpreter emits and every drop
// successor the planner generates.
func IsValidGoal(w *worldmodel.State, relation Relation, a, b string) bool {
	if a == b {
		return false
	}
	if a == worldmodel.Floor {
		return false
	}
	if b == worldmodel.Floor {
		return relation == OnTop || relation == Above
	}

	aAttrs, aOK := w.Attributes(a)
	bAttrs, bOK := w.Attributes(b)
	if !aOK || !bOK {
		return false
	}

	switch relation {
	case Inside:
		if aAttrs.Size == worldmodel.SizeLarge && bAttrs.Size == worldmodel.SizeSmall {
			return false
		}
		if bAttrs.Form != worldmodel.FormBox {
			return false
		}
		if isOneOf(aAttrs.Form, worldmodel.FormPyramid, worldmodel.FormPlank, worldmodel.FormBox) && aAttrs.Size == bAttrs.Size {
			return false
		}
		return true

	case OnTop, Above:
		if aAttrs.Form == worldmodel.FormBall && b != worldmodel.Floor && relation == OnTop {
			return false
		}
		if bAttrs.Form == worldmodel.FormBall {
			return false
		}
		if aAttrs.Size == worldmodel.SizeLarge && bAttrs.Size == worldmodel.SizeSmall {
			return false
		}
		if aAttrs.Form == worldmodel.FormBox && aAttrs.Size == worldmodel.SizeSmall &&
			isOneOf(bAttrs.Form, worldmodel.FormBrick, worldmodel.FormPyramid) && bAttrs.Size == worldmodel.SizeSmall {
			return false
		}
		if aAttrs.Form == worldmodel.FormBox && aAttrs.Size == worldmodel.SizeLarge &&
			bAttrs.Form == worldmodel.FormPyramid && bAttrs.Size == worldmodel.SizeLarge {
			return false
		}
		return true

	default:
		// leftof, rightof, beside and under carry no physical
		// constraint beyond self-reference and the floor rule above.
		return true
	}
}

func isOneOf(f worldmodel.Form, candidates ...worldmodel.Form) bool {
	for _, c := range candidates {
		if f == c {
			return true
		}
	}
	return false
}
