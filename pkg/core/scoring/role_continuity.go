package scoring

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// ScoreRoleContinuity scores ROLE_CONTINUITY preferences as a penalty
// for switching roles mid-block: -switchCount x appliedWeight.
//
// Walking the worker's assignments in start order, a pair counts as a
// switch only when it is temporally adjacent (previous end equal to next
// start) and the roles differ. A gap starts a new block and is never a
// switch. A preference that names a role only counts switches touching
// that role; a nil role counts every differing-role adjacent pair.
//
// This is the only scorer that can return a negative score; zero
// switches means a zero penalty and a satisfied preference.
func ScoreRoleContinuity(prefs []model.PreferenceRecord, assignments []model.Assignment) []model.ScoreResult {
	results := make([]model.ScoreResult, 0)

	for _, pref := range filterCategory(prefs, model.CategoryRoleContinuity) {
		weight := AppliedWeight(pref)
		own := workerAssignmentsByStart(assignments, pref.WorkerID)

		switches := 0
		for i := 1; i < len(own); i++ {
			prev := own[i-1]
			next := own[i]

			if prev.EndMinute != next.StartMinute || prev.RoleID == next.RoleID {
				continue
			}

			// A named role restricts the penalty to switches touching it
			if pref.RoleID != nil && *pref.RoleID != prev.RoleID && *pref.RoleID != next.RoleID {
				continue
			}

			switches++
		}

		results = append(results, model.ScoreResult{
			WorkerID:      pref.WorkerID,
			Category:      model.CategoryRoleContinuity,
			Satisfied:     switches == 0,
			Score:         -float64(switches) * weight,
			AppliedWeight: weight,
			Details:       fmt.Sprintf("%d role switches within consecutive blocks", switches),
		})
	}

	return results
}
