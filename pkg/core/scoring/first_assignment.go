package scoring

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// ScoreFirstAssignment scores FIRST_ASSIGNMENT preferences: does the
// worker's chronologically earliest assignment match the preferred role?
//
// A satisfied preference contributes its full applied weight, an
// unsatisfied one contributes zero. A worker with no assignments at all
// is unsatisfied, not an error. A nil preference role matches any first
// assignment.
func ScoreFirstAssignment(prefs []model.PreferenceRecord, assignments []model.Assignment) []model.ScoreResult {
	results := make([]model.ScoreResult, 0)

	for _, pref := range filterCategory(prefs, model.CategoryFirstAssignment) {
		weight := AppliedWeight(pref)
		own := workerAssignmentsByStart(assignments, pref.WorkerID)

		if len(own) == 0 {
			results = append(results, model.ScoreResult{
				WorkerID:      pref.WorkerID,
				Category:      model.CategoryFirstAssignment,
				Satisfied:     false,
				Score:         0,
				AppliedWeight: weight,
				Details:       fmt.Sprintf("worker %s has no assignments", pref.WorkerID),
			})
			continue
		}

		first := own[0]
		if pref.MatchesRole(first.RoleID) {
			results = append(results, model.ScoreResult{
				WorkerID:      pref.WorkerID,
				Category:      model.CategoryFirstAssignment,
				Satisfied:     true,
				Score:         weight,
				AppliedWeight: weight,
				Details: fmt.Sprintf("first assignment at %s matches preferred role",
					model.FormatClock(first.StartMinute)),
			})
			continue
		}

		results = append(results, model.ScoreResult{
			WorkerID:      pref.WorkerID,
			Category:      model.CategoryFirstAssignment,
			Satisfied:     false,
			Score:         0,
			AppliedWeight: weight,
			Details: fmt.Sprintf("first assignment is role %s, not the preferred role",
				first.RoleID),
		})
	}

	return results
}
