package rules

import (
	"fmt"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// CheckWorkerAvailability verifies that every assignment falls inside
// its worker's availability window.
//
// A worker with no availability record at all is itself a violation
// rather than a crash: the optimizer may transiently propose assignments
// referencing stale worker ids, and those proposals must surface as
// infeasible, not as panics. Early starts and late ends are reported
// with the breach magnitude in minutes and both clock times.
func CheckWorkerAvailability(assignments []model.Assignment, workersByID map[string]model.WorkerConfig) model.ValidationResult {
	var violations []string

	for _, a := range assignments {
		worker, ok := workersByID[a.WorkerID]
		if !ok {
			violations = append(violations, fmt.Sprintf(
				"worker %s has no availability window defined", a.WorkerID))
			continue
		}

		if a.StartMinute < worker.AvailableFromMinute {
			violations = append(violations, fmt.Sprintf(
				"worker %s starts at %s, %d minutes before they are available at %s",
				a.WorkerID, model.FormatClock(a.StartMinute),
				worker.AvailableFromMinute-a.StartMinute,
				model.FormatClock(worker.AvailableFromMinute)))
		}

		if a.EndMinute > worker.AvailableUntilMinute {
			violations = append(violations, fmt.Sprintf(
				"worker %s ends at %s, %d minutes after their availability ends at %s",
				a.WorkerID, model.FormatClock(a.EndMinute),
				a.EndMinute-worker.AvailableUntilMinute,
				model.FormatClock(worker.AvailableUntilMinute)))
		}
	}

	return result(violations)
}
