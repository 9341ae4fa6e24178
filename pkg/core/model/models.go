package model

// PreferenceCategory identifies which scorer a preference record feeds
type PreferenceCategory string

const (
	CategoryFirstAssignment PreferenceCategory = "FIRST_ASSIGNMENT"
	CategoryFavorite        PreferenceCategory = "FAVORITE"
	CategoryBreakTiming     PreferenceCategory = "BREAK_TIMING"
	CategoryRoleContinuity  PreferenceCategory = "ROLE_CONTINUITY"
)

func (c PreferenceCategory) IsValid() bool {
	switch c {
	case CategoryFirstAssignment, CategoryFavorite, CategoryBreakTiming, CategoryRoleContinuity:
		return true
	}
	return false
}

// Assignment places one worker into one role for a half-open time
// interval [StartMinute, EndMinute), minutes from midnight.
// EndMinute must be greater than StartMinute.
type Assignment struct {
	WorkerID    string
	RoleID      string
	StartMinute int
	EndMinute   int
}

// DurationMinutes returns the length of the assignment in minutes
func (a Assignment) DurationMinutes() int {
	return a.EndMinute - a.StartMinute
}

// OverlapsHour returns true if any part of the assignment falls inside
// the clock hour [hour*60, hour*60+60)
func (a Assignment) OverlapsHour(hour int) bool {
	hourStart := hour * 60
	hourEnd := hourStart + 60
	return a.StartMinute < hourEnd && a.EndMinute > hourStart
}

// StoreConfig holds the store's operating parameters for one scheduling day.
// CloseMinute must be greater than OpenMinute, and BreakWindowEndOffset
// greater than BreakWindowStartOffset. Immutable once built.
type StoreConfig struct {
	SlotMinutes               int
	OpenMinute                int
	CloseMinute               int
	BreakEligibleShiftMinutes int
	BreakWindowStartOffset    int
	BreakWindowEndOffset      int
}

// RoleConfig holds the scheduling rules for one role.
// MinSlots must not exceed MaxSlots.
type RoleConfig struct {
	RoleID                 string
	Code                   string
	MinSlots               int
	MaxSlots               int
	BlockSizeSlots         int
	MustBeConsecutive      bool
	AllowOutsideStoreHours bool
}

// WorkerConfig holds one worker's availability window and qualifications.
// AvailableUntilMinute must be greater than AvailableFromMinute.
type WorkerConfig struct {
	WorkerID             string
	Name                 string
	AvailableFromMinute  int
	AvailableUntilMinute int
	QualifiedRoleIDs     []string
}

// IsQualified returns true if the worker is qualified for the given role
func (w WorkerConfig) IsQualified(roleID string) bool {
	for _, id := range w.QualifiedRoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// PreferenceRecord expresses one worker preference to be scored.
// RoleID is nil when the preference applies to any role.
// AdaptiveBoost is an externally computed fairness multiplier; callers
// must not pass values below 1.0. TimingDirection is only meaningful for
// BREAK_TIMING preferences: +1 prefers a late break, -1 an early break,
// 0 means no timing preference is configured.
type PreferenceRecord struct {
	WorkerID        string
	RoleID          *string
	Category        PreferenceCategory
	BaseWeight      float64
	CrewWeight      float64
	AdaptiveBoost   float64
	TimingDirection int
}

// MatchesRole returns true if the preference applies to the given role,
// either because it names that role or because it names no role at all
func (p PreferenceRecord) MatchesRole(roleID string) bool {
	return p.RoleID == nil || *p.RoleID == roleID
}

// HourlyTarget requires an exact headcount for one role during one clock hour
type HourlyTarget struct {
	RoleID   string
	Hour     int
	Required int
}

// ValidationResult is the outcome of one validator call.
// Violations is an ordered list of human-readable rule breaches; Valid is
// true iff the list is empty. Results are built fresh per call and never
// mutated afterward.
type ValidationResult struct {
	Valid      bool
	Violations []string
}

// ScoreResult is the outcome of scoring one preference record.
// It carries exactly the fields the external fairness tracker records:
// worker, category, whether the preference was satisfied, the score
// contribution and the applied weight behind it.
type ScoreResult struct {
	WorkerID      string
	Category      PreferenceCategory
	Satisfied     bool
	Score         float64
	AppliedWeight float64
	Details       string
}

// Schedule is one read-only evaluation snapshot: the store parameters,
// the role and worker configuration, the candidate assignments produced
// by the optimizer, the preferences to score and the coverage targets to
// enforce. Built fresh per evaluation pass; the engine retains no
// references across calls.
type Schedule struct {
	Store       StoreConfig
	Roles       []RoleConfig
	Workers     []WorkerConfig
	Assignments []Assignment
	Preferences []PreferenceRecord
	Targets     []HourlyTarget

	// BreakRoleIDs names which roles count as breaks for break-timing
	// scoring. The engine has no built-in notion of a break role.
	BreakRoleIDs []string
}

// RoleByID returns the role config for the given id, or nil if unknown
func (s *Schedule) RoleByID(roleID string) *RoleConfig {
	for i := range s.Roles {
		if s.Roles[i].RoleID == roleID {
			return &s.Roles[i]
		}
	}
	return nil
}

// WorkerByID returns the worker config for the given id, or nil if unknown
func (s *Schedule) WorkerByID(workerID string) *WorkerConfig {
	for i := range s.Workers {
		if s.Workers[i].WorkerID == workerID {
			return &s.Workers[i]
		}
	}
	return nil
}

// AssignmentsForWorker returns the worker's assignments in input order
func (s *Schedule) AssignmentsForWorker(workerID string) []Assignment {
	out := make([]Assignment, 0)
	for _, a := range s.Assignments {
		if a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out
}

// IsBreakRole returns true if the given role id is configured as a break role
func (s *Schedule) IsBreakRole(roleID string) bool {
	for _, id := range s.BreakRoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}
