package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

// StoreSection mirrors model.StoreConfig in the schedule-day file
type StoreSection struct {
	SlotMinutes               int `yaml:"slotMinutes" validate:"required,min=1"`
	OpenMinute                int `yaml:"openMinute" validate:"min=0,max=1439"`
	CloseMinute               int `yaml:"closeMinute" validate:"required,min=1,max=1440,gtfield=OpenMinute"`
	BreakEligibleShiftMinutes int `yaml:"breakEligibleShiftMinutes" validate:"min=0"`
	BreakWindowStartOffset    int `yaml:"breakWindowStartOffset" validate:"min=0"`
	BreakWindowEndOffset      int `yaml:"breakWindowEndOffset" validate:"min=0,gtfield=BreakWindowStartOffset"`
}

// RoleSection defines one role's scheduling rules
type RoleSection struct {
	ID                     string `yaml:"id" validate:"required"`
	Code                   string `yaml:"code" validate:"required"`
	MinSlots               int    `yaml:"minSlots" validate:"min=0"`
	MaxSlots               int    `yaml:"maxSlots" validate:"min=0,gtefield=MinSlots"`
	BlockSizeSlots         int    `yaml:"blockSizeSlots,omitempty" validate:"min=0"`
	MustBeConsecutive      bool   `yaml:"mustBeConsecutive,omitempty"`
	AllowOutsideStoreHours bool   `yaml:"allowOutsideStoreHours,omitempty"`
}

// WorkerSection defines one worker's availability and qualifications
type WorkerSection struct {
	ID             string   `yaml:"id" validate:"required"`
	Name           string   `yaml:"name" validate:"required"`
	AvailableFrom  int      `yaml:"availableFrom" validate:"min=0,max=1439"`
	AvailableUntil int      `yaml:"availableUntil" validate:"required,min=1,max=1440,gtfield=AvailableFrom"`
	QualifiedRoles []string `yaml:"qualifiedRoles,omitempty"`
}

// PreferenceSection defines one worker preference to score.
// Role is omitted when the preference applies to any role.
type PreferenceSection struct {
	Worker          string  `yaml:"worker" validate:"required"`
	Role            string  `yaml:"role,omitempty"`
	Category        string  `yaml:"category" validate:"required,oneof=FIRST_ASSIGNMENT FAVORITE BREAK_TIMING ROLE_CONTINUITY"`
	BaseWeight      float64 `yaml:"baseWeight" validate:"min=0"`
	CrewWeight      float64 `yaml:"crewWeight" validate:"min=0"`
	AdaptiveBoost   float64 `yaml:"adaptiveBoost" validate:"gte=1"`
	TimingDirection int     `yaml:"timingDirection,omitempty" validate:"oneof=-1 0 1"`
}

// CoverageRule requires an exact role headcount for one clock hour on
// every date its recurrence rule matches
type CoverageRule struct {
	RRule    string `yaml:"rrule" validate:"required"`
	Role     string `yaml:"role" validate:"required"`
	Hour     int    `yaml:"hour" validate:"min=0,max=23"`
	Required int    `yaml:"required" validate:"min=0"`
}

// AssignmentSection is one candidate assignment to evaluate
type AssignmentSection struct {
	Worker string `yaml:"worker" validate:"required"`
	Role   string `yaml:"role" validate:"required"`
	Start  int    `yaml:"start" validate:"min=0"`
	End    int    `yaml:"end" validate:"required,min=1,gtfield=Start"`
}

// Config is one schedule-day file: the store parameters, the role and
// worker setup, the preferences, the recurring coverage rules and the
// candidate assignments to evaluate
type Config struct {
	Store         StoreSection        `yaml:"store" validate:"required"`
	BreakRoles    []string            `yaml:"breakRoles,omitempty"`
	Roles         []RoleSection       `yaml:"roles" validate:"required,min=1,dive"`
	Workers       []WorkerSection     `yaml:"workers" validate:"required,min=1,dive"`
	Preferences   []PreferenceSection `yaml:"preferences,omitempty" validate:"dive"`
	CoverageRules []CoverageRule      `yaml:"coverageRules,omitempty" validate:"dive"`
	Assignments   []AssignmentSection `yaml:"assignments,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the schedule file from storecrew_schedule.yaml
// It looks for the file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	schedulePath, err := findScheduleFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find schedule file: %w", err)
	}

	return LoadFromPath(schedulePath)
}

// LoadFromPath loads and validates a schedule file from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the schedule struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("schedule validation failed: %w", err)
	}

	// Validate rrule syntax for each coverage rule
	for i, rule := range cfg.CoverageRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in coverageRules[%d]: %w", i, err)
		}
	}

	return nil
}

// TargetsFor expands the recurring coverage rules into the concrete
// hourly targets that apply on the given date, in rule order
func (c *Config) TargetsFor(date time.Time) ([]model.HourlyTarget, error) {
	targets := make([]model.HourlyTarget, 0, len(c.CoverageRules))

	for i, rule := range c.CoverageRules {
		applies, err := ruleAppliesOn(rule.RRule, date)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in coverageRules[%d]: %w", i, err)
		}
		if applies {
			targets = append(targets, model.HourlyTarget{
				RoleID:   rule.Role,
				Hour:     rule.Hour,
				Required: rule.Required,
			})
		}
	}

	return targets, nil
}

// Schedule assembles the read-only evaluation snapshot for the given
// date: domain model structures plus the coverage targets the recurring
// rules produce for that date
func (c *Config) Schedule(date time.Time) (*model.Schedule, error) {
	targets, err := c.TargetsFor(date)
	if err != nil {
		return nil, err
	}

	roles := make([]model.RoleConfig, len(c.Roles))
	for i, r := range c.Roles {
		roles[i] = model.RoleConfig{
			RoleID:                 r.ID,
			Code:                   r.Code,
			MinSlots:               r.MinSlots,
			MaxSlots:               r.MaxSlots,
			BlockSizeSlots:         r.BlockSizeSlots,
			MustBeConsecutive:      r.MustBeConsecutive,
			AllowOutsideStoreHours: r.AllowOutsideStoreHours,
		}
	}

	workers := make([]model.WorkerConfig, len(c.Workers))
	for i, w := range c.Workers {
		workers[i] = model.WorkerConfig{
			WorkerID:             w.ID,
			Name:                 w.Name,
			AvailableFromMinute:  w.AvailableFrom,
			AvailableUntilMinute: w.AvailableUntil,
			QualifiedRoleIDs:     w.QualifiedRoles,
		}
	}

	prefs := make([]model.PreferenceRecord, len(c.Preferences))
	for i, p := range c.Preferences {
		pref := model.PreferenceRecord{
			WorkerID:        p.Worker,
			Category:        model.PreferenceCategory(p.Category),
			BaseWeight:      p.BaseWeight,
			CrewWeight:      p.CrewWeight,
			AdaptiveBoost:   p.AdaptiveBoost,
			TimingDirection: p.TimingDirection,
		}
		if p.Role != "" {
			role := p.Role
			pref.RoleID = &role
		}
		prefs[i] = pref
	}

	assignments := make([]model.Assignment, len(c.Assignments))
	for i, a := range c.Assignments {
		assignments[i] = model.Assignment{
			WorkerID:    a.Worker,
			RoleID:      a.Role,
			StartMinute: a.Start,
			EndMinute:   a.End,
		}
	}

	return &model.Schedule{
		Store: model.StoreConfig{
			SlotMinutes:               c.Store.SlotMinutes,
			OpenMinute:                c.Store.OpenMinute,
			CloseMinute:               c.Store.CloseMinute,
			BreakEligibleShiftMinutes: c.Store.BreakEligibleShiftMinutes,
			BreakWindowStartOffset:    c.Store.BreakWindowStartOffset,
			BreakWindowEndOffset:      c.Store.BreakWindowEndOffset,
		},
		Roles:        roles,
		Workers:      workers,
		Assignments:  assignments,
		Preferences:  prefs,
		Targets:      targets,
		BreakRoleIDs: c.BreakRoles,
	}, nil
}

// ruleAppliesOn reports whether the recurrence rule has an occurrence on
// the given calendar date. Rules without a DTSTART are anchored at the
// start of 2020 so past dates still match.
func ruleAppliesOn(rruleStr string, date time.Time) (bool, error) {
	opt, err := rrule.StrToROption(rruleStr)
	if err != nil {
		return false, err
	}

	if opt.Dtstart.IsZero() {
		opt.Dtstart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return false, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	return len(r.Between(dayStart, dayEnd, true)) > 0, nil
}

// findScheduleFile searches for storecrew_schedule.yaml in current directory and home directory
func findScheduleFile() (string, error) {
	scheduleFileName := "storecrew_schedule.yaml"

	// Check current directory
	if _, err := os.Stat(scheduleFileName); err == nil {
		return scheduleFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeSchedulePath := filepath.Join(homeDir, scheduleFileName)
	if _, err := os.Stat(homeSchedulePath); err == nil {
		return homeSchedulePath, nil
	}

	return "", fmt.Errorf("schedule file not found in current directory or home directory")
}
