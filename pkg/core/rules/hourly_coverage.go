package rules

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// CheckHourlyCoverage verifies that one role's assignments put exactly
// the required number of distinct workers on the floor during each
// target clock hour.
//
// A worker is counted once per hour no matter how many of their
// assignment fragments overlap it. The target is an exact headcount, not
// a band: too few workers is "understaffed" and too many "overstaffed",
// each naming the actual and required counts and the clock hour. Targets
// are checked in the order given.
func CheckHourlyCoverage(assignments []model.Assignment, targets []model.HourlyTarget, store model.StoreConfig) model.ValidationResult {
	var violations []string

	for _, target := range targets {
		workers := make(map[string]bool)
		for _, a := range assignments {
			if a.OverlapsHour(target.Hour) {
				workers[a.WorkerID] = true
			}
		}

		actual := len(workers)
		if actual == target.Required {
			continue
		}

		if actual < target.Required {
			violations = append(violations, fmt.Sprintf(
				"understaffed at %s: %d workers scheduled but exactly %d required",
				model.FormatClock(target.Hour*60), actual, target.Required))
		} else {
			violations = append(violations, fmt.Sprintf(
				"overstaffed at %s: %d workers scheduled but exactly %d required",
				model.FormatClock(target.Hour*60), actual, target.Required))
		}
	}

	return result(violations)
}
