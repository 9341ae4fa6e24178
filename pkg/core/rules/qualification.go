package rules

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// QualifiedPair is one declared (worker, role) qualification
type QualifiedPair struct {
	WorkerID string
	RoleID   string
}

// CheckQualifications flags every assignment whose (worker, role) pair
// is not among the declared qualifications.
//
// The pair set is built into a hash set once, then each assignment is a
// single membership check. Duplicate assignments of a qualified pair are
// all independently valid. Messages name the role's human-readable code
// when the roleCodesByID lookup knows it, falling back to the raw id.
func CheckQualifications(assignments []model.Assignment, qualified []QualifiedPair, roleCodesByID map[string]string) model.ValidationResult {
	qualifiedSet := make(map[QualifiedPair]bool, len(qualified))
	for _, pair := range qualified {
		qualifiedSet[pair] = true
	}

	var violations []string

	for _, a := range assignments {
		if qualifiedSet[QualifiedPair{WorkerID: a.WorkerID, RoleID: a.RoleID}] {
			continue
		}

		roleName := a.RoleID
		if code, ok := roleCodesByID[a.RoleID]; ok {
			roleName = code
		}

		violations = append(violations, fmt.Sprintf(
			"worker %s is not qualified for role %s", a.WorkerID, roleName))
	}

	return result(violations)
}
