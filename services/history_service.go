package services

import (
	"github.com/OtaoDavis/Tfit-app/models"
	"github.com/OtaoDavis/Tfit-app/utils"
)

// HistoryService is a read-only projection over the ledgers used for
// rendering past days. It never mutates state.
type HistoryService struct {
	store *LedgerStore
}

func NewHistoryService(store *LedgerStore) *HistoryService {
	return &HistoryService{store: store}
}

// RecordsExcluding lists a kind's records newest first, skipping the
// excluded day, typically today, which the UI renders as a live widget
// separate from history.
func (h *HistoryService) RecordsExcluding(userID uint, kind models.MetricKind, excludedKey string) []*models.DailyRecord {
	all := h.store.ListAll(userID, kind)
	out := make([]*models.DailyRecord, 0, len(all))
	for _, rec := range all {
		if rec.Date == excludedKey {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Today returns the current day's record, or a zero-valued placeholder
// carrying the active goal when nothing has been logged yet.
func (h *HistoryService) Today(userID uint, kind models.MetricKind) *models.DailyRecord {
	key := utils.TodayKey()
	if rec, ok := h.store.Get(userID, kind, key); ok {
		return rec
	}
	return &models.DailyRecord{Date: key, Goal: h.store.prefs.Goal(userID, kind)}
}

// PercentOfGoal reports progress toward a goal capped at 100. A zero or
// negative goal yields 0 rather than dividing by zero.
func PercentOfGoal(value, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	p := float64(value) / float64(goal)
	if p > 1 {
		p = 1
	}
	return p * 100
}
