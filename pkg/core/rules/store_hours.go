package rules

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// CheckStoreHours verifies that an assignment stays inside the store's
// opening hours.
//
// Roles with AllowOutsideStoreHours set (stocking before open, closing
// work after hours) are always valid. Otherwise the assignment must start
// no earlier than opening and end no later than closing; each breach is
// reported with both clock times and the breach magnitude in minutes.
func CheckStoreHours(a model.Assignment, store model.StoreConfig, role model.RoleConfig) model.ValidationResult {
	if role.AllowOutsideStoreHours {
		return result(nil)
	}

	var violations []string

	if a.StartMinute < store.OpenMinute {
		violations = append(violations, fmt.Sprintf(
			"assignment starts at %s, %d minutes before the store opens at %s",
			model.FormatClock(a.StartMinute), store.OpenMinute-a.StartMinute,
			model.FormatClock(store.OpenMinute)))
	}

	if a.EndMinute > store.CloseMinute {
		violations = append(violations, fmt.Sprintf(
			"assignment ends at %s, %d minutes after the store closes at %s",
			model.FormatClock(a.EndMinute), a.EndMinute-store.CloseMinute,
			model.FormatClock(store.CloseMinute)))
	}

	return result(violations)
}
