package rules

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// CheckSlotAlignment verifies that both boundaries of an assignment fall
// on the store's slot grid.
//
// Violations (at most two, start before end):
//   - Start minute is not a multiple of the slot size
//   - End minute is not a multiple of the slot size
func CheckSlotAlignment(a model.Assignment, store model.StoreConfig) model.ValidationResult {
	var violations []string

	if a.StartMinute%store.SlotMinutes != 0 {
		violations = append(violations, fmt.Sprintf(
			"start minute %d is not aligned to the %d-minute slot grid",
			a.StartMinute, store.SlotMinutes))
	}

	if a.EndMinute%store.SlotMinutes != 0 {
		violations = append(violations, fmt.Sprintf(
			"end minute %d is not aligned to the %d-minute slot grid",
			a.EndMinute, store.SlotMinutes))
	}

	return result(violations)
}
