package scoring

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// ScoreBreakTiming scores BREAK_TIMING preferences: how close the
// worker's break falls to their preferred end of the break window.
//
// The worker's shift spans from the start of their earliest assignment
// to the end of their latest. Shifts shorter than the store's
// break-eligible minimum cannot satisfy the preference, and neither can
// a shift with no break-role assignment; both score zero with an
// explanatory details string. Otherwise the break's start is normalized
// into [0, 1] within the window
//
//	[shiftStart+BreakWindowStartOffset, shiftStart+BreakWindowEndOffset)
//
// clamped at both ends. TimingDirection +1 rewards a late break (the
// normalized position itself), -1 an early one (its complement), and 0
// means no timing preference is configured, which scores zero without
// being an error.
//
// breakRoleIDs names which roles count as breaks; the engine has no
// built-in break role.
func ScoreBreakTiming(prefs []model.PreferenceRecord, assignments []model.Assignment, store model.StoreConfig, breakRoleIDs map[string]bool) []model.ScoreResult {
	results := make([]model.ScoreResult, 0)

	for _, pref := range filterCategory(prefs, model.CategoryBreakTiming) {
		weight := AppliedWeight(pref)

		unsatisfied := func(details string) model.ScoreResult {
			return model.ScoreResult{
				WorkerID:      pref.WorkerID,
				Category:      model.CategoryBreakTiming,
				Satisfied:     false,
				Score:         0,
				AppliedWeight: weight,
				Details:       details,
			}
		}

		if pref.TimingDirection == 0 {
			results = append(results, unsatisfied("no break timing direction configured"))
			continue
		}

		own := workerAssignmentsByStart(assignments, pref.WorkerID)
		if len(own) == 0 {
			results = append(results, unsatisfied(fmt.Sprintf("worker %s has no assignments", pref.WorkerID)))
			continue
		}

		shiftStart := own[0].StartMinute
		shiftEnd := own[len(own)-1].EndMinute

		if shiftEnd-shiftStart < store.BreakEligibleShiftMinutes {
			results = append(results, unsatisfied(fmt.Sprintf(
				"shift of %d minutes is too short for a break (minimum %d)",
				shiftEnd-shiftStart, store.BreakEligibleShiftMinutes)))
			continue
		}

		var breakAssignment *model.Assignment
		for i := range own {
			if breakRoleIDs[own[i].RoleID] {
				breakAssignment = &own[i]
				break
			}
		}
		if breakAssignment == nil {
			results = append(results, unsatisfied(fmt.Sprintf(
				"worker %s has no break assignment", pref.WorkerID)))
			continue
		}

		windowStart := shiftStart + store.BreakWindowStartOffset
		windowEnd := shiftStart + store.BreakWindowEndOffset

		position := float64(breakAssignment.StartMinute-windowStart) / float64(windowEnd-windowStart)
		if position < 0 {
			position = 0
		}
		if position > 1 {
			position = 1
		}

		satisfaction := position
		if pref.TimingDirection < 0 {
			satisfaction = 1 - position
		}

		results = append(results, model.ScoreResult{
			WorkerID:      pref.WorkerID,
			Category:      model.CategoryBreakTiming,
			Satisfied:     satisfaction > 0,
			Score:         satisfaction * weight,
			AppliedWeight: weight,
			Details: fmt.Sprintf("break at %s sits at %.2f of the window [%s, %s)",
				model.FormatClock(breakAssignment.StartMinute), position,
				model.FormatClock(windowStart), model.FormatClock(windowEnd)),
		})
	}

	return results
}
