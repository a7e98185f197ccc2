package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/OtaoDavis/Tfit-app/models"
	"github.com/OtaoDavis/Tfit-app/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrackerService merges incoming deltas into today's ledger records,
// applying the kind-specific merge rule before handing off to the
// LedgerStore. It is the only writer of ledger state.
type TrackerService struct {
	store  *LedgerStore
	prefs  *GoalPrefs
	alerts *AlertService // optional
	log    *zap.Logger
	now    func() time.Time

	steps *stepSessions
}

func NewTrackerService(store *LedgerStore, prefs *GoalPrefs, alerts *AlertService, log *zap.Logger) *TrackerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TrackerService{
		store:  store,
		prefs:  prefs,
		alerts: alerts,
		log:    log,
		now:    time.Now,
		steps:  newStepSessions(),
	}
}

// clampCumulative keeps counter metrics inside [0, 2×goal] to suppress
// runaway sensor or input error. An unset goal skips the upper bound.
func clampCumulative(v, goal int) int {
	if v < 0 {
		return 0
	}
	if goal > 0 && v > 2*goal {
		return 2 * goal
	}
	return v
}

func (t *TrackerService) todayKey() string {
	return utils.DateKeyFor(t.now())
}

// AddWater merges a (possibly negative) milliliter delta into today's
// water record.
func (t *TrackerService) AddWater(userID uint, deltaMl int) (*models.DailyRecord, error) {
	return t.addCumulative(userID, models.MetricWater, t.todayKey(), deltaMl)
}

func (t *TrackerService) addCumulative(userID uint, kind models.MetricKind, dateKey string, delta int) (*models.DailyRecord, error) {
	var crossed bool
	rec, err := t.store.Upsert(userID, kind, dateKey, func(rec *models.DailyRecord) {
		old := rec.Value.Cumulative(kind)
		next := clampCumulative(old+delta, rec.Goal)
		crossed = rec.Goal > 0 && old < rec.Goal && next >= rec.Goal
		rec.Value.SetCumulative(kind, next)
	})
	if err != nil && !IsPersistence(err) {
		return nil, err
	}
	if crossed && t.alerts != nil {
		t.alerts.GoalReached(userID, kind, rec.Value.Cumulative(kind), rec.Goal)
	}
	return rec, err
}

// parseClock parses an "HH:MM" wall-clock string.
func parseClock(s string) (hour, min int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	min, err = strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, min, nil
}

// LogSleep records one night of sleep keyed by the wake-up date. A bed
// time at or after the wake time is interpreted as belonging to the
// previous calendar day (overnight sleep spanning midnight). The wake
// date may be a past day; logging sleep history is an explicit user
// edit.
func (t *TrackerService) LogSleep(userID uint, wakeDateKey, bedTime, wakeTime string) (*models.DailyRecord, error) {
	if wakeDateKey == "" {
		wakeDateKey = t.todayKey()
	}
	day, err := utils.ParseDateKey(wakeDateKey)
	if err != nil {
		return nil, validationErr("invalid wake-up date %q, expected YYYY-MM-DD", wakeDateKey)
	}
	bedH, bedM, err := parseClock(bedTime)
	if err != nil {
		return nil, validationErr("%v", err)
	}
	wakeH, wakeM, err := parseClock(wakeTime)
	if err != nil {
		return nil, validationErr("%v", err)
	}

	wake := time.Date(day.Year(), day.Month(), day.Day(), wakeH, wakeM, 0, 0, day.Location())
	bed := time.Date(day.Year(), day.Month(), day.Day(), bedH, bedM, 0, 0, day.Location())
	if !bed.Before(wake) {
		bed = bed.AddDate(0, 0, -1)
	}

	duration := int(wake.Sub(bed).Minutes())
	if duration <= 0 {
		return nil, validationErr("non-positive duration")
	}

	entry := &models.SleepEntry{
		ID:              uuid.NewString(),
		BedTime:         bedTime,
		WakeTime:        wakeTime,
		DurationMinutes: duration,
	}
	return t.store.Upsert(userID, models.MetricSleep, wakeDateKey, func(rec *models.DailyRecord) {
		rec.Value.Sleep = entry // at most one per day; re-logging replaces
	})
}

// LogMeal stores a captured meal into its slot for the given day (today
// when dateKey is empty). Logging into an occupied slot replaces the
// prior entry for that slot and day.
func (t *TrackerService) LogMeal(userID uint, dateKey string, slot models.MealSlot, entry models.MealEntry) (*models.DailyRecord, error) {
	if !models.ValidMealSlot(slot) {
		return nil, validationErr("unknown meal slot %q", slot)
	}
	if dateKey == "" {
		dateKey = t.todayKey()
	} else if _, err := utils.ParseDateKey(dateKey); err != nil {
		return nil, validationErr("invalid date %q, expected YYYY-MM-DD", dateKey)
	}
	if entry.Name == "" {
		return nil, validationErr("meal name is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CapturedAt.IsZero() {
		entry.CapturedAt = t.now()
	}

	return t.store.Upsert(userID, models.MetricMeals, dateKey, func(rec *models.DailyRecord) {
		if rec.Value.Meals == nil {
			rec.Value.Meals = make(map[models.MealSlot]models.MealEntry)
		}
		rec.Value.Meals[slot] = entry
	})
}

// DeleteMeal removes one slot's entry; a day left with no entries is
// pruned from the ledger.
func (t *TrackerService) DeleteMeal(userID uint, dateKey string, slot models.MealSlot) error {
	if !models.ValidMealSlot(slot) {
		return validationErr("unknown meal slot %q", slot)
	}
	rec, ok := t.store.Get(userID, models.MetricMeals, dateKey)
	if !ok {
		return validationErr("no meals logged for %s", dateKey)
	}
	if _, ok := rec.Value.Meals[slot]; !ok {
		return validationErr("no %s entry logged for %s", slot, dateKey)
	}

	if len(rec.Value.Meals) == 1 {
		return t.store.Remove(userID, models.MetricMeals, dateKey)
	}
	_, err := t.store.Upsert(userID, models.MetricMeals, dateKey, func(rec *models.DailyRecord) {
		delete(rec.Value.Meals, slot)
	})
	return err
}

// SetGoal updates the user's active goal preference and patches today's
// record in place so the progress percentage reflects the new target the
// same day. Other days' frozen goals are never touched.
func (t *TrackerService) SetGoal(userID uint, kind models.MetricKind, goal int) error {
	if err := t.prefs.SetGoal(userID, kind, goal); err != nil {
		return err
	}
	return t.store.SetGoalForDay(userID, kind, t.todayKey(), goal)
}
