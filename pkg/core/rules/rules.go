// Package rules contains the hard scheduling constraints for a store day.
//
// Every check is a stateless function over read-only inputs returning a
// fresh model.ValidationResult. Rule breaches are ordinary return values,
// never errors: each violation is a human-readable string, and the list
// order is deterministic (assignments in input order, start-boundary
// checks before end-boundary checks, coverage targets in config order) so
// repeated runs over identical inputs produce identical output.
//
// The external optimizer treats any Valid=false result as a hard
// constraint: assignments that produce violations are infeasible.
package rules

import "github.com/storecrewhq/storecrew/pkg/core/model"

// result wraps a violation list into a ValidationResult, setting Valid
// iff the list is empty
func result(violations []string) model.ValidationResult {
	return model.ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}
