package services

import (
	"testing"
	"time"

	"github.com/OtaoDavis/Tfit-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker() (*TrackerService, *LedgerStore) {
	sub := NewMemorySubstrate()
	prefs := NewGoalPrefs(sub, nil)
	store := NewLedgerStore(sub, prefs, nil)
	return NewTrackerService(store, prefs, nil, nil), store
}

func fixedClock(day string, hour int) func() time.Time {
	return func() time.Time {
		d, _ := time.ParseInLocation("2006-01-02", day, time.Local)
		return d.Add(time.Duration(hour) * time.Hour)
	}
}

func TestAddWaterAccumulates(t *testing.T) {
	svc, _ := newTestTracker()
	svc.now = fixedClock("2026-08-30", 9)

	var rec *models.DailyRecord
	var err error
	for i := 0; i < 5; i++ {
		rec, err = svc.AddWater(1, 250)
		require.NoError(t, err)
	}
	assert.Equal(t, 1250, rec.Value.Cumulative(models.MetricWater))
	assert.Equal(t, "2026-08-30", rec.Date)
}

func TestAddWaterClampsToTwiceGoal(t *testing.T) {
	svc, _ := newTestTracker()
	svc.now = fixedClock("2026-08-30", 9)

	rec, err := svc.AddWater(1, 50000)
	require.NoError(t, err)
	assert.Equal(t, 4000, rec.Value.Cumulative(models.MetricWater), "default goal 2000 caps at 4000")
}

func TestAddWaterClampsAtZero(t *testing.T) {
	svc, _ := newTestTracker()
	svc.now = fixedClock("2026-08-30", 9)

	_, err := svc.AddWater(1, 500)
	require.NoError(t, err)
	rec, err := svc.AddWater(1, -900)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Value.Cumulative(models.MetricWater))
}

func TestSetGoalFreezesPastDays(t *testing.T) {
	svc, store := newTestTracker()

	svc.now = fixedClock("2026-08-29", 9)
	_, err := svc.AddWater(1, 500)
	require.NoError(t, err)

	svc.now = fixedClock("2026-08-30", 9)
	require.NoError(t, svc.SetGoal(1, models.MetricWater, 3000))

	past, ok := store.Get(1, models.MetricWater, "2026-08-29")
	require.True(t, ok)
	assert.Equal(t, 2000, past.Goal, "past days keep the goal frozen into them")

	rec, err := svc.AddWater(1, 100)
	require.NoError(t, err)
	assert.Equal(t, 3000, rec.Goal, "new records pick up the active goal")
}

func TestSetGoalPatchesTodayInPlace(t *testing.T) {
	svc, store := newTestTracker()
	svc.now = fixedClock("2026-08-30", 9)

	_, err := svc.AddWater(1, 500)
	require.NoError(t, err)
	require.NoError(t, svc.SetGoal(1, models.MetricWater, 2500))

	rec, ok := store.Get(1, models.MetricWater, "2026-08-30")
	require.True(t, ok)
	assert.Equal(t, 2500, rec.Goal)
	assert.Equal(t, 500, rec.Value.Cumulative(models.MetricWater), "logged value survives the goal patch")
}

func TestSetGoalRejectsNonPositive(t *testing.T) {
	svc, _ := newTestTracker()
	err := svc.SetGoal(1, models.MetricWater, 0)
	assert.True(t, IsValidation(err))
}

func TestLogSleepOvernight(t *testing.T) {
	svc, _ := newTestTracker()

	rec, err := svc.LogSleep(1, "2026-08-30", "23:00", "07:00")
	require.NoError(t, err)

	require.NotNil(t, rec.Value.Sleep)
	assert.Equal(t, 480, rec.Value.Sleep.DurationMinutes, "23:00 to 07:00 spans midnight into the wake date")
	assert.Equal(t, "2026-08-30", rec.Date)
}

func TestLogSleepSameDayNap(t *testing.T) {
	svc, _ := newTestTracker()

	rec, err := svc.LogSleep(1, "2026-08-30", "13:00", "14:30")
	require.NoError(t, err)
	assert.Equal(t, 90, rec.Value.Sleep.DurationMinutes)
}

func TestLogSleepReplacesPriorNight(t *testing.T) {
	svc, store := newTestTracker()

	_, err := svc.LogSleep(1, "2026-08-30", "23:00", "07:00")
	require.NoError(t, err)
	_, err = svc.LogSleep(1, "2026-08-30", "22:00", "06:00")
	require.NoError(t, err)

	rec, ok := store.Get(1, models.MetricSleep, "2026-08-30")
	require.True(t, ok)
	assert.Equal(t, "22:00", rec.Value.Sleep.BedTime, "one sleep entry per day; re-logging replaces")

	all := store.ListAll(1, models.MetricSleep)
	assert.Len(t, all, 1)
}

func TestLogSleepRejectsBadClock(t *testing.T) {
	svc, store := newTestTracker()

	_, err := svc.LogSleep(1, "2026-08-30", "25:00", "07:00")
	assert.True(t, IsValidation(err))
	_, err = svc.LogSleep(1, "2026-08-30", "23:00", "7am")
	assert.True(t, IsValidation(err))
	_, err = svc.LogSleep(1, "30-08-2026", "23:00", "07:00")
	assert.True(t, IsValidation(err))

	assert.Empty(t, store.ListAll(1, models.MetricSleep), "rejected input must not write")
}

func TestLogMealIntoSlot(t *testing.T) {
	svc, _ := newTestTracker()
	svc.now = fixedClock("2026-08-30", 12)

	rec, err := svc.LogMeal(1, "", models.SlotLunch, models.MealEntry{Name: "Salad", Calories: 320})
	require.NoError(t, err)

	entry, ok := rec.Value.Meals[models.SlotLunch]
	require.True(t, ok)
	assert.Equal(t, "Salad", entry.Name)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CapturedAt.IsZero())
}

func TestLogMealReplacesOccupiedSlot(t *testing.T) {
	svc, store := newTestTracker()
	svc.now = fixedClock("2026-08-30", 12)

	_, err := svc.LogMeal(1, "", models.SlotLunch, models.MealEntry{Name: "Salad"})
	require.NoError(t, err)
	_, err = svc.LogMeal(1, "", models.SlotLunch, models.MealEntry{Name: "Burrito"})
	require.NoError(t, err)

	rec, ok := store.Get(1, models.MetricMeals, "2026-08-30")
	require.True(t, ok)
	require.Len(t, rec.Value.Meals, 1)
	assert.Equal(t, "Burrito", rec.Value.Meals[models.SlotLunch].Name)
}

func TestLogMealRejectsUnknownSlot(t *testing.T) {
	svc, _ := newTestTracker()

	_, err := svc.LogMeal(1, "", models.MealSlot("Brunch"), models.MealEntry{Name: "Eggs"})
	assert.True(t, IsValidation(err))
}

func TestDeleteMealPrunesEmptyDay(t *testing.T) {
	svc, store := newTestTracker()
	svc.now = fixedClock("2026-08-30", 12)

	_, err := svc.LogMeal(1, "", models.SlotLunch, models.MealEntry{Name: "Salad"})
	require.NoError(t, err)
	_, err = svc.LogMeal(1, "", models.SlotDinner, models.MealEntry{Name: "Pasta"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal(1, "2026-08-30", models.SlotLunch))
	rec, ok := store.Get(1, models.MetricMeals, "2026-08-30")
	require.True(t, ok)
	assert.Len(t, rec.Value.Meals, 1)

	require.NoError(t, svc.DeleteMeal(1, "2026-08-30", models.SlotDinner))
	_, ok = store.Get(1, models.MetricMeals, "2026-08-30")
	assert.False(t, ok, "deleting the last entry prunes the day")
}

func TestDeleteMealMissingEntry(t *testing.T) {
	svc, _ := newTestTracker()
	err := svc.DeleteMeal(1, "2026-08-30", models.SlotLunch)
	assert.True(t, IsValidation(err))
}

func TestRecordStepsBaselineAndDeltas(t *testing.T) {
	svc, _ := newTestTracker()
	svc.now = fixedClock("2026-08-30", 9)

	rec, err := svc.RecordSteps(1, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Value.Cumulative(models.MetricSteps), "first reading anchors the baseline")

	rec, err = svc.RecordSteps(1, 350)
	require.NoError(t, err)
	assert.Equal(t, 250, rec.Value.Cumulative(models.MetricSteps))

	// counter reset: the subscription restarted underneath us
	rec, err = svc.RecordSteps(1, 50)
	require.NoError(t, err)
	assert.Equal(t, 250, rec.Value.Cumulative(models.MetricSteps))

	rec, err = svc.RecordSteps(1, 80)
	require.NoError(t, err)
	assert.Equal(t, 280, rec.Value.Cumulative(models.MetricSteps))
}

func TestRecordStepsMidnightRollover(t *testing.T) {
	svc, store := newTestTracker()
	svc.now = fixedClock("2026-08-29", 23)

	_, err := svc.RecordSteps(1, 1000)
	require.NoError(t, err)
	_, err = svc.RecordSteps(1, 1500)
	require.NoError(t, err)

	// next reading lands after midnight; the in-flight delta belongs to
	// the day the steps were taken
	svc.now = fixedClock("2026-08-30", 0)
	rec, err := svc.RecordSteps(1, 1600)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", rec.Date)
	assert.Equal(t, 0, rec.Value.Cumulative(models.MetricSteps), "new day starts at zero")

	outgoing, ok := store.Get(1, models.MetricSteps, "2026-08-29")
	require.True(t, ok)
	assert.Equal(t, 600, outgoing.Value.Cumulative(models.MetricSteps))
}

func TestRecordStepsAfterSessionEnd(t *testing.T) {
	svc, _ := newTestTracker()
	svc.now = fixedClock("2026-08-30", 9)

	_, err := svc.RecordSteps(1, 1000)
	require.NoError(t, err)
	rec, err := svc.RecordSteps(1, 1400)
	require.NoError(t, err)
	assert.Equal(t, 400, rec.Value.Cumulative(models.MetricSteps))

	svc.EndStepSession(1)

	// a new subscription re-anchors; its counter starts over
	rec, err = svc.RecordSteps(1, 200)
	require.NoError(t, err)
	assert.Equal(t, 400, rec.Value.Cumulative(models.MetricSteps))
	rec, err = svc.RecordSteps(1, 300)
	require.NoError(t, err)
	assert.Equal(t, 500, rec.Value.Cumulative(models.MetricSteps))
}

func TestRecordStepsSensorUnavailable(t *testing.T) {
	svc, store := newTestTracker()
	svc.now = fixedClock("2026-08-30", 9)

	svc.SetStepSensorAvailability(1, false)
	_, err := svc.RecordSteps(1, 100)
	assert.ErrorIs(t, err, ErrSensorUnavailable)
	assert.Empty(t, store.ListAll(1, models.MetricSteps), "no record mutated while unavailable")

	svc.SetStepSensorAvailability(1, true)
	_, err = svc.RecordSteps(1, 100)
	assert.NoError(t, err)
}

func TestRecordStepsRejectsNegative(t *testing.T) {
	svc, _ := newTestTracker()
	_, err := svc.RecordSteps(1, -5)
	assert.True(t, IsValidation(err))
}
