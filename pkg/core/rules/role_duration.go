package rules

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// CheckRoleDuration verifies that an assignment's length in slots stays
// inside the role's configured minimum and maximum.
func CheckRoleDuration(a model.Assignment, store model.StoreConfig, role model.RoleConfig) model.ValidationResult {
	var violations []string

	slots := a.DurationMinutes() / store.SlotMinutes

	if slots < role.MinSlots {
		violations = append(violations, fmt.Sprintf(
			"assignment is %d slots, below the minimum of %d for role %s",
			slots, role.MinSlots, role.Code))
	}

	if slots > role.MaxSlots {
		violations = append(violations, fmt.Sprintf(
			"assignment is %d slots, above the maximum of %d for role %s",
			slots, role.MaxSlots, role.Code))
	}

	return result(violations)
}
