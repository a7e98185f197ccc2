package services

import (
	"testing"

	"github.com/OtaoDavis/Tfit-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWater(t *testing.T, store *LedgerStore, days ...string) {
	t.Helper()
	for _, day := range days {
		_, err := store.Upsert(1, models.MetricWater, day, func(rec *models.DailyRecord) {
			rec.Value.SetCumulative(models.MetricWater, 500)
		})
		require.NoError(t, err)
	}
}

func TestRecordsExcludingSkipsGivenDay(t *testing.T) {
	store, _ := newTestStore()
	seedWater(t, store, "2026-08-28", "2026-08-29", "2026-08-30")

	h := NewHistoryService(store)
	hist := h.RecordsExcluding(1, models.MetricWater, "2026-08-30")
	require.Len(t, hist, 2)
	assert.Equal(t, "2026-08-29", hist[0].Date)
	assert.Equal(t, "2026-08-28", hist[1].Date)

	// reading history is idempotent
	again := h.RecordsExcluding(1, models.MetricWater, "2026-08-30")
	assert.Equal(t, hist, again)
}

func TestTodayPlaceholderCarriesActiveGoal(t *testing.T) {
	sub := NewMemorySubstrate()
	prefs := NewGoalPrefs(sub, nil)
	store := NewLedgerStore(sub, prefs, nil)
	require.NoError(t, prefs.SetGoal(1, models.MetricWater, 2500))

	h := NewHistoryService(store)
	today := h.Today(1, models.MetricWater)
	assert.Equal(t, 2500, today.Goal)
	assert.Equal(t, 0, today.Value.Cumulative(models.MetricWater))
}

func TestPercentOfGoal(t *testing.T) {
	assert.Equal(t, 50.0, PercentOfGoal(1000, 2000))
	assert.Equal(t, 100.0, PercentOfGoal(2500, 2000), "capped at 100")
	assert.Equal(t, 0.0, PercentOfGoal(500, 0), "zero goal never divides")
	assert.Equal(t, 0.0, PercentOfGoal(500, -10))
}
