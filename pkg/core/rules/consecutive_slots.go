package rules

import (
	"fmt"
	"slices"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// CheckConsecutiveSlots verifies that the assignments of one (worker,
// role) pair form a single uninterrupted block when the role requires it.
//
// Roles without MustBeConsecutive may be split freely and are always
// valid, as are sets of zero or one assignment. Otherwise the
// assignments are sorted by start time and every adjacent pair must
// touch exactly: the previous end equal to the next start. A gap is
// reported in slots, an overlap is flagged with both boundary times.
//
// This is the rule that stops the optimizer from fragmenting a role
// that needs contiguous coverage.
func CheckConsecutiveSlots(assignments []model.Assignment, store model.StoreConfig, role model.RoleConfig) model.ValidationResult {
	if !role.MustBeConsecutive || len(assignments) < 2 {
		return result(nil)
	}

	sorted := make([]model.Assignment, len(assignments))
	copy(sorted, assignments)
	slices.SortFunc(sorted, func(a, b model.Assignment) int {
		return a.StartMinute - b.StartMinute
	})

	var violations []string

	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1]
		next := sorted[i]

		switch {
		case prev.EndMinute < next.StartMinute:
			gapSlots := (next.StartMinute - prev.EndMinute) / store.SlotMinutes
			violations = append(violations, fmt.Sprintf(
				"role %s must be worked consecutively but has a gap of %d slots between %s and %s",
				role.Code, gapSlots,
				model.FormatClock(prev.EndMinute), model.FormatClock(next.StartMinute)))
		case prev.EndMinute > next.StartMinute:
			violations = append(violations, fmt.Sprintf(
				"role %s assignments overlap: one ends at %s after the next starts at %s",
				role.Code,
				model.FormatClock(prev.EndMinute), model.FormatClock(next.StartMinute)))
		}
	}

	return result(violations)
}
