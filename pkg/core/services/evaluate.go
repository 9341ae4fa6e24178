package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storecrewhq/storecrew/internal/metrics"
	"github.com/storecrewhq/storecrew/pkg/core/model"
	"github.com/storecrewhq/storecrew/pkg/core/rules"
	"github.com/storecrewhq/storecrew/pkg/core/scoring"
)

// Rule names used in evaluation reports and metrics labels
const (
	RuleSlotAlignment      = "SlotAlignment"
	RuleStoreHours         = "StoreHours"
	RuleRoleDuration       = "RoleDuration"
	RuleConsecutiveSlots   = "ConsecutiveSlots"
	RuleWorkerAvailability = "WorkerAvailability"
	RuleQualification      = "Qualification"
	RuleHourlyCoverage     = "HourlyCoverage"
)

// CheckResult pairs one rule's name with its validation outcome
type CheckResult struct {
	Rule   string
	Result model.ValidationResult
}

// EvaluationReport is the full verdict on one candidate schedule: the
// hard-constraint outcome per rule and the preference scores that make
// up the objective value the optimizer maximizes
type EvaluationReport struct {
	ID         string
	Valid      bool
	Checks     []CheckResult
	Scores     []model.ScoreResult
	TotalScore float64
}

// Violations flattens every rule breach into one ordered list, each
// prefixed with its rule name
func (r *EvaluationReport) Violations() []string {
	var out []string
	for _, check := range r.Checks {
		for _, v := range check.Result.Violations {
			out = append(out, fmt.Sprintf("%s: %s", check.Rule, v))
		}
	}
	return out
}

// Evaluate runs every validator and scorer over one schedule snapshot
// and aggregates the results into a report.
//
// Rules run in a fixed order and walk assignments, workers, roles and
// targets in input order, so two evaluations of the same snapshot
// produce identical reports. The engine itself stays pure; this layer
// owns the logging, metrics and report identity.
func Evaluate(ctx context.Context, logger *zap.Logger, sched *model.Schedule) (*EvaluationReport, error) {
	if sched == nil {
		return nil, fmt.Errorf("schedule must not be nil")
	}

	start := time.Now()

	report := &EvaluationReport{
		ID: uuid.New().String(),
	}

	logger.Debug("Starting schedule evaluation",
		zap.String("report_id", report.ID),
		zap.Int("assignments", len(sched.Assignments)),
		zap.Int("preferences", len(sched.Preferences)))

	report.Checks = runValidators(sched)

	report.Valid = true
	for _, check := range report.Checks {
		if !check.Result.Valid {
			report.Valid = false
		}
		metrics.ViolationsTotal.WithLabelValues(check.Rule).
			Add(float64(len(check.Result.Violations)))
	}

	report.Scores = runScorers(sched)
	for _, score := range report.Scores {
		report.TotalScore += score.Score
		metrics.PreferenceScoreTotal.WithLabelValues(string(score.Category)).Add(score.Score)
	}

	verdict := "valid"
	if !report.Valid {
		verdict = "invalid"
	}
	metrics.EvaluationsTotal.WithLabelValues(verdict).Inc()
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())

	logger.Info("Schedule evaluated",
		zap.String("report_id", report.ID),
		zap.Bool("valid", report.Valid),
		zap.Int("violations", len(report.Violations())),
		zap.Float64("total_score", report.TotalScore))

	return report, nil
}

// runValidators executes the seven rules in their fixed order
func runValidators(sched *model.Schedule) []CheckResult {
	workersByID := make(map[string]model.WorkerConfig, len(sched.Workers))
	for _, w := range sched.Workers {
		workersByID[w.WorkerID] = w
	}

	roleCodes := make(map[string]string, len(sched.Roles))
	for _, r := range sched.Roles {
		roleCodes[r.RoleID] = r.Code
	}

	checks := []CheckResult{
		{Rule: RuleSlotAlignment, Result: checkAlignmentAll(sched)},
		{Rule: RuleStoreHours, Result: checkStoreHoursAll(sched)},
		{Rule: RuleRoleDuration, Result: checkDurationAll(sched)},
		{Rule: RuleConsecutiveSlots, Result: checkConsecutiveAll(sched)},
		{Rule: RuleWorkerAvailability, Result: rules.CheckWorkerAvailability(sched.Assignments, workersByID)},
		{Rule: RuleQualification, Result: rules.CheckQualifications(sched.Assignments, qualifiedPairs(sched), roleCodes)},
		{Rule: RuleHourlyCoverage, Result: checkCoverageAll(sched)},
	}

	return checks
}

// runScorers executes the four preference scorers
func runScorers(sched *model.Schedule) []model.ScoreResult {
	breakRoles := make(map[string]bool, len(sched.BreakRoleIDs))
	for _, id := range sched.BreakRoleIDs {
		breakRoles[id] = true
	}

	var scores []model.ScoreResult
	scores = append(scores, scoring.ScoreFirstAssignment(sched.Preferences, sched.Assignments)...)
	scores = append(scores, scoring.ScoreFavorite(sched.Preferences, sched.Assignments)...)
	scores = append(scores, scoring.ScoreBreakTiming(sched.Preferences, sched.Assignments, sched.Store, breakRoles)...)
	scores = append(scores, scoring.ScoreRoleContinuity(sched.Preferences, sched.Assignments)...)
	return scores
}

// checkAlignmentAll merges per-assignment alignment results in input order
func checkAlignmentAll(sched *model.Schedule) model.ValidationResult {
	var violations []string
	for _, a := range sched.Assignments {
		violations = append(violations, rules.CheckSlotAlignment(a, sched.Store).Violations...)
	}
	return validationResult(violations)
}

// checkStoreHoursAll merges per-assignment store-hours results.
// An assignment referencing a role with no configuration is itself a
// violation rather than a crash; the optimizer may propose stale ids.
func checkStoreHoursAll(sched *model.Schedule) model.ValidationResult {
	var violations []string
	for _, a := range sched.Assignments {
		role := sched.RoleByID(a.RoleID)
		if role == nil {
			violations = append(violations, fmt.Sprintf("role %s has no configuration", a.RoleID))
			continue
		}
		violations = append(violations, rules.CheckStoreHours(a, sched.Store, *role).Violations...)
	}
	return validationResult(violations)
}

// checkDurationAll merges per-assignment duration results
func checkDurationAll(sched *model.Schedule) model.ValidationResult {
	var violations []string
	for _, a := range sched.Assignments {
		role := sched.RoleByID(a.RoleID)
		if role == nil {
			// Already reported by the store-hours pass
			continue
		}
		violations = append(violations, rules.CheckRoleDuration(a, sched.Store, *role).Violations...)
	}
	return validationResult(violations)
}

// checkConsecutiveAll runs the contiguity rule once per (worker, role)
// pair, pairs ordered by first appearance in the assignment list
func checkConsecutiveAll(sched *model.Schedule) model.ValidationResult {
	type pair struct{ workerID, roleID string }

	var order []pair
	grouped := make(map[pair][]model.Assignment)
	for _, a := range sched.Assignments {
		key := pair{workerID: a.WorkerID, roleID: a.RoleID}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], a)
	}

	var violations []string
	for _, key := range order {
		role := sched.RoleByID(key.roleID)
		if role == nil {
			continue
		}
		res := rules.CheckConsecutiveSlots(grouped[key], sched.Store, *role)
		violations = append(violations, res.Violations...)
	}
	return validationResult(violations)
}

// checkCoverageAll runs the coverage rule per role, roles in config
// order, each over that role's assignments and targets
func checkCoverageAll(sched *model.Schedule) model.ValidationResult {
	var violations []string
	for _, role := range sched.Roles {
		var targets []model.HourlyTarget
		for _, target := range sched.Targets {
			if target.RoleID == role.RoleID {
				targets = append(targets, target)
			}
		}
		if len(targets) == 0 {
			continue
		}

		var assignments []model.Assignment
		for _, a := range sched.Assignments {
			if a.RoleID == role.RoleID {
				assignments = append(assignments, a)
			}
		}

		res := rules.CheckHourlyCoverage(assignments, targets, sched.Store)
		for _, v := range res.Violations {
			violations = append(violations, fmt.Sprintf("role %s %s", role.Code, v))
		}
	}
	return validationResult(violations)
}

// qualifiedPairs flattens worker qualifications into (worker, role) pairs
func qualifiedPairs(sched *model.Schedule) []rules.QualifiedPair {
	var pairs []rules.QualifiedPair
	for _, w := range sched.Workers {
		for _, roleID := range w.QualifiedRoleIDs {
			pairs = append(pairs, rules.QualifiedPair{WorkerID: w.WorkerID, RoleID: roleID})
		}
	}
	return pairs
}

func validationResult(violations []string) model.ValidationResult {
	return model.ValidationResult{Valid: len(violations) == 0, Violations: violations}
}
