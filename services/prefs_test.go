package services

import (
	"testing"

	"github.com/OtaoDavis/Tfit-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalDefaultsPerKind(t *testing.T) {
	prefs := NewGoalPrefs(NewMemorySubstrate(), nil)

	assert.Equal(t, 2000, prefs.Goal(1, models.MetricWater))
	assert.Equal(t, 10000, prefs.Goal(1, models.MetricSteps))
	assert.Equal(t, 480, prefs.Goal(1, models.MetricSleep))
}

func TestGoalSurvivesRestart(t *testing.T) {
	sub := NewMemorySubstrate()
	prefs := NewGoalPrefs(sub, nil)
	require.NoError(t, prefs.SetGoal(1, models.MetricSteps, 12000))

	reopened := NewGoalPrefs(sub, nil)
	assert.Equal(t, 12000, reopened.Goal(1, models.MetricSteps))
}

func TestMalformedStoredGoalFallsBack(t *testing.T) {
	sub := NewMemorySubstrate()
	require.NoError(t, sub.Write("pref:1:water", "not-a-number"))
	require.NoError(t, sub.Write("pref:1:steps", "-40"))

	prefs := NewGoalPrefs(sub, nil)
	assert.Equal(t, 2000, prefs.Goal(1, models.MetricWater))
	assert.Equal(t, 10000, prefs.Goal(1, models.MetricSteps))
}

func TestSetGoalFlushFailureIsAdvisory(t *testing.T) {
	sub := &failingSubstrate{MemorySubstrate: NewMemorySubstrate(), failWrites: true}
	prefs := NewGoalPrefs(sub, nil)

	err := prefs.SetGoal(1, models.MetricWater, 2500)
	require.Error(t, err)
	assert.True(t, IsPersistence(err))
	assert.Equal(t, 2500, prefs.Goal(1, models.MetricWater), "cache keeps the new goal despite failed flush")
}
