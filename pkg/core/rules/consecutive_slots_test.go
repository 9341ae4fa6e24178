package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

func TestCheckConsecutiveSlots_AdjacentAssignmentsValid(t *testing.T) {
	store := model.StoreConfig{SlotMinutes: 30}
	role := model.RoleConfig{RoleID: "r1", Code: "Till", MustBeConsecutive: true}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 540, EndMinute: 600},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 600, EndMinute: 660},
	}

	res := CheckConsecutiveSlots(assignments, store, role)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Violations)
}

func TestCheckConsecutiveSlots_GapDetected(t *testing.T) {
	store := model.StoreConfig{SlotMinutes: 30}
	role := model.RoleConfig{RoleID: "r1", Code: "Till", MustBeConsecutive: true}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 540, EndMinute: 600},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 630, EndMinute: 690},
	}

	res := CheckConsecutiveSlots(assignments, store, role)
	assert.False(t, res.Valid)
	assert.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "gap of 1 slots")
}

func TestCheckConsecutiveSlots_OverlapDetected(t *testing.T) {
	store := model.StoreConfig{SlotMinutes: 30}
	role := model.RoleConfig{RoleID: "r1", Code: "Till", MustBeConsecutive: true}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 540, EndMinute: 630},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 600, EndMinute: 660},
	}

	res := CheckConsecutiveSlots(assignments, store, role)
	assert.False(t, res.Valid)
	assert.Len(t, res.Violations, 1)
	assert.Contains(t, res.Violations[0], "overlap")
}

func TestCheckConsecutiveSlots_SplittingAllowed(t *testing.T) {
	store := model.StoreConfig{SlotMinutes: 30}
	role := model.RoleConfig{RoleID: "r1", Code: "Floor", MustBeConsecutive: false}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 540, EndMinute: 600},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 720, EndMinute: 780},
	}

	res := CheckConsecutiveSlots(assignments, store, role)
	assert.True(t, res.Valid)
}

func TestCheckConsecutiveSlots_ZeroOrOneAssignmentValid(t *testing.T) {
	store := model.StoreConfig{SlotMinutes: 30}
	role := model.RoleConfig{RoleID: "r1", Code: "Till", MustBeConsecutive: true}

	assert.True(t, CheckConsecutiveSlots(nil, store, role).Valid)

	one := []model.Assignment{{WorkerID: "w1", RoleID: "r1", StartMinute: 540, EndMinute: 600}}
	assert.True(t, CheckConsecutiveSlots(one, store, role).Valid)
}

func TestCheckConsecutiveSlots_SortsBeforeChecking(t *testing.T) {
	store := model.StoreConfig{SlotMinutes: 30}
	role := model.RoleConfig{RoleID: "r1", Code: "Till", MustBeConsecutive: true}

	// Out of input order but contiguous in time
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 600, EndMinute: 660},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 540, EndMinute: 600},
	}

	res := CheckConsecutiveSlots(assignments, store, role)
	assert.True(t, res.Valid)
}

func TestCheckConsecutiveSlots_DoesNotMutateInput(t *testing.T) {
	store := model.StoreConfig{SlotMinutes: 30}
	role := model.RoleConfig{RoleID: "r1", Code: "Till", MustBeConsecutive: true}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 600, EndMinute: 660},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 540, EndMinute: 600},
	}

	CheckConsecutiveSlots(assignments, store, role)

	// Caller's slice keeps its original order
	assert.Equal(t, 600, assignments[0].StartMinute)
	assert.Equal(t, 540, assignments[1].StartMinute)
}

func TestCheckConsecutiveSlots_MultipleGaps(t *testing.T) {
	store := model.StoreConfig{SlotMinutes: 30}
	role := model.RoleConfig{RoleID: "r1", Code: "Till", MustBeConsecutive: true}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 480, EndMinute: 540},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 600, EndMinute: 660},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 750, EndMinute: 810},
	}

	res := CheckConsecutiveSlots(assignments, store, role)
	assert.False(t, res.Valid)
	assert.Len(t, res.Violations, 2)
	assert.Contains(t, res.Violations[0], "gap of 2 slots")
	assert.Contains(t, res.Violations[1], "gap of 3 slots")
}
