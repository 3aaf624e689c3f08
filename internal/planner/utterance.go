package planner

import (
	"fmt"
	"strings"

	"github.com/mictra/shrdlite-course-project/internal/stategraph"
	"github.com/mictra/shrdlite-course-project/internal/worldmodel"
)

// AlreadyTrue is the single special utterance signalling an empty but
// successful plan (spec.md §6).
const AlreadyTrue = "That is already true!"

func describeObject(attrs worldmodel.Object) string {
	var parts []string
	if attrs.Size != "" {
		parts = append(parts, string(attrs.Size))
	}
	if attrs.Color != "" {
		parts = append(parts, attrs.Color)
	}
	parts = append(parts, string(attrs.Form))
	return strings.Join(parts, " ")
}

// pickUtterance reads "Taking the ..." when the pick is the final action
// in the path, else "Moving the ...".
func pickUtterance(before *stategraph.Node, pickedID string, isLastAction bool) string {
	attrs, _ := before.State.Attributes(pickedID)
	verb := "Moving"
	if isLastAction {
		verb = "Taking"
	}
	return fmt.Sprintf("%s the %s", verb, describeObject(attrs))
}

// dropUtterance reads "Dropping the ..." followed by a qualifier
// describing the new support (spec.md §4.4).
func dropUtterance(after *stategraph.Node, droppedID string) string {
	attrs, _ := after.State.Attributes(droppedID)
	base := fmt.Sprintf("Dropping the %s", describeObject(attrs))

	col := after.State.Stacks[after.State.Arm]
	if len(col) == 1 {
		return base + " on the floor"
	}
	support := col[len(col)-2]
	supportAttrs, ok := after.State.Attributes(support)
	if ok && supportAttrs.Form == worldmodel.FormBox {
		return base + fmt.Sprintf(" inside the %s", describeObject(supportAttrs))
	}
	if ok {
		return base + fmt.Sprintf(" on top the %s", describeObject(supportAttrs))
	}
	return base
}
