package scoring

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// ScoreFavorite scores FAVORITE preferences: total minutes the worker
// spends on the preferred role, times the applied weight.
//
// The contribution scales linearly with both the weight and the time, so
// doubling the matching minutes doubles the score. A nil preference role
// counts every minute the worker is assigned at all. Zero matching
// minutes contributes zero.
func ScoreFavorite(prefs []model.PreferenceRecord, assignments []model.Assignment) []model.ScoreResult {
	results := make([]model.ScoreResult, 0)

	for _, pref := range filterCategory(prefs, model.CategoryFavorite) {
		weight := AppliedWeight(pref)

		minutes := 0
		for _, a := range assignments {
			if a.WorkerID == pref.WorkerID && pref.MatchesRole(a.RoleID) {
				minutes += a.DurationMinutes()
			}
		}

		if minutes == 0 {
			results = append(results, model.ScoreResult{
				WorkerID:      pref.WorkerID,
				Category:      model.CategoryFavorite,
				Satisfied:     false,
				Score:         0,
				AppliedWeight: weight,
				Details:       fmt.Sprintf("worker %s has no time on the preferred role", pref.WorkerID),
			})
			continue
		}

		results = append(results, model.ScoreResult{
			WorkerID:      pref.WorkerID,
			Category:      model.CategoryFavorite,
			Satisfied:     true,
			Score:         float64(minutes) * weight,
			AppliedWeight: weight,
			Details:       fmt.Sprintf("%d minutes on the preferred role", minutes),
		})
	}

	return results
}
