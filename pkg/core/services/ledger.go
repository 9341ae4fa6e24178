package services

import "github.com/storecrewhq/storecrew/pkg/core/model"

// LedgerEntry is the per-preference record the external fairness tracker
// persists to compute future adaptiveBoost values. The engine never
// computes or stores the boost itself; it only hands over the inputs.
type LedgerEntry struct {
	WorkerID      string
	Category      model.PreferenceCategory
	Satisfied     bool
	Score         float64
	AppliedWeight float64
}

// FairnessLedger projects a report's scores into the tracker's record
// format, one entry per evaluated preference, in score order
func FairnessLedger(report *EvaluationReport) []LedgerEntry {
	entries := make([]LedgerEntry, len(report.Scores))
	for i, s := range report.Scores {
		entries[i] = LedgerEntry{
			WorkerID:      s.WorkerID,
			Category:      s.Category,
			Satisfied:     s.Satisfied,
			Score:         s.Score,
			AppliedWeight: s.AppliedWeight,
		}
	}
	return entries
}
