// Package scoring computes the preference-satisfaction contributions
// that feed the external optimizer's objective function.
//
// Each scorer is a stateless function over read-only inputs. It filters
// the preference list down to its own category and returns one
// model.ScoreResult per preference, in preference input order, so a run
// over identical inputs is always bit-identical. An empty preference
// list is a legitimate zero-result, not an error, and a preference with
// no matching assignment data scores zero with an explanatory details
// string.
//
// Every contribution derives from the single multiplicative weight rule
// in AppliedWeight; no scorer adds or overrides weight components.
package scoring

import (
	"slices"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// AppliedWeight is the one shared weight rule behind every scorer:
//
//	baseWeight x crewWeight x adaptiveBoost
//
// Strictly multiplicative, so doubling any single factor doubles the
// resulting contribution. AdaptiveBoost is the externally computed
// fairness multiplier (>= 1.0) rewarding historically under-served
// workers; the engine only consumes it.
func AppliedWeight(p model.PreferenceRecord) float64 {
	return p.BaseWeight * p.CrewWeight * p.AdaptiveBoost
}

// filterCategory returns the preferences of one category, preserving order
func filterCategory(prefs []model.PreferenceRecord, category model.PreferenceCategory) []model.PreferenceRecord {
	filtered := make([]model.PreferenceRecord, 0)
	for _, p := range prefs {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// workerAssignmentsByStart returns the worker's assignments sorted by
// start time, leaving the caller's slice untouched
func workerAssignmentsByStart(assignments []model.Assignment, workerID string) []model.Assignment {
	own := make([]model.Assignment, 0)
	for _, a := range assignments {
		if a.WorkerID == workerID {
			own = append(own, a)
		}
	}
	slices.SortFunc(own, func(a, b model.Assignment) int {
		return a.StartMinute - b.StartMinute
	})
	return own
}
