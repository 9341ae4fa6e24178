package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/storecrewhq/storecrew/pkg/core/model"
)

func TestScoreFavorite_EndToEndScenario(t *testing.T) {
	// Store opens 8:00 AM, 30-minute slots; one hour on role R with
	// baseWeight=2, crewWeight=3, adaptiveBoost=1.0 scores 60 * 6 = 360
	roleID := "R"
	prefs := []model.PreferenceRecord{
		{WorkerID: "w1", RoleID: &roleID, Category: model.CategoryFavorite,
			BaseWeight: 2, CrewWeight: 3, AdaptiveBoost: 1.0},
	}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "R", StartMinute: 480, EndMinute: 540},
	}

	results := ScoreFavorite(prefs, assignments)
	assert.Len(t, results, 1)
	assert.True(t, results[0].Satisfied)
	assert.Equal(t, 360.0, results[0].Score)
	assert.Equal(t, 6.0, results[0].AppliedWeight)
}

func TestScoreFavorite_LinearInTime(t *testing.T) {
	roleID := "r1"
	prefs := []model.PreferenceRecord{
		{WorkerID: "w1", RoleID: &roleID, Category: model.CategoryFavorite,
			BaseWeight: 2, CrewWeight: 1, AdaptiveBoost: 1.0},
	}

	oneHour := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 480, EndMinute: 540},
	}
	twoHours := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 480, EndMinute: 600},
	}

	short := ScoreFavorite(prefs, oneHour)
	long := ScoreFavorite(prefs, twoHours)
	assert.Equal(t, 2*short[0].Score, long[0].Score)
}

func TestScoreFavorite_SumsAcrossFragments(t *testing.T) {
	roleID := "r1"
	prefs := []model.PreferenceRecord{
		{WorkerID: "w1", RoleID: &roleID, Category: model.CategoryFavorite,
			BaseWeight: 1, CrewWeight: 1, AdaptiveBoost: 1.0},
	}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 480, EndMinute: 540},
		{WorkerID: "w1", RoleID: "r2", StartMinute: 540, EndMinute: 600},
		{WorkerID: "w1", RoleID: "r1", StartMinute: 600, EndMinute: 690},
	}

	results := ScoreFavorite(prefs, assignments)
	assert.Equal(t, 150.0, results[0].Score) // 60 + 90 matching minutes
}

func TestScoreFavorite_AnyRoleCountsAllMinutes(t *testing.T) {
	prefs := []model.PreferenceRecord{
		{WorkerID: "w1", Category: model.CategoryFavorite,
			BaseWeight: 1, CrewWeight: 1, AdaptiveBoost: 1.0},
	}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 480, EndMinute: 540},
		{WorkerID: "w1", RoleID: "r2", StartMinute: 540, EndMinute: 600},
	}

	results := ScoreFavorite(prefs, assignments)
	assert.Equal(t, 120.0, results[0].Score)
}

func TestScoreFavorite_NoMatchingMinutes(t *testing.T) {
	roleID := "r9"
	prefs := []model.PreferenceRecord{
		{WorkerID: "w1", RoleID: &roleID, Category: model.CategoryFavorite,
			BaseWeight: 5, CrewWeight: 2, AdaptiveBoost: 1.0},
	}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 480, EndMinute: 540},
		{WorkerID: "w2", RoleID: "r9", StartMinute: 480, EndMinute: 540},
	}

	results := ScoreFavorite(prefs, assignments)
	assert.Len(t, results, 1)
	assert.False(t, results[0].Satisfied)
	assert.Equal(t, 0.0, results[0].Score)
	assert.Equal(t, 10.0, results[0].AppliedWeight)
}

func TestScoreFavorite_AdaptiveBoostScales(t *testing.T) {
	roleID := "r1"
	boosted := []model.PreferenceRecord{
		{WorkerID: "w1", RoleID: &roleID, Category: model.CategoryFavorite,
			BaseWeight: 2, CrewWeight: 3, AdaptiveBoost: 1.5},
	}
	assignments := []model.Assignment{
		{WorkerID: "w1", RoleID: "r1", StartMinute: 480, EndMinute: 540},
	}

	results := ScoreFavorite(boosted, assignments)
	assert.Equal(t, 540.0, results[0].Score) // 60 * (2*3*1.5)
}
