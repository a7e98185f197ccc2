package models

import "time"

// MetricKind identifies which daily ledger a record belongs to.
type MetricKind string

const (
	MetricWater MetricKind = "water"
	MetricSleep MetricKind = "sleep"
	MetricSteps MetricKind = "steps"
	MetricMeals MetricKind = "meals"
)

// MealSlot is a named meal-time category acting as a sub-key within a
// day's meal record.
type MealSlot string

const (
	SlotBreakfast      MealSlot = "Breakfast"
	SlotMorningSnack   MealSlot = "Morning Snack"
	SlotLunch          MealSlot = "Lunch"
	SlotAfternoonSnack MealSlot = "Afternoon Snack"
	SlotDinner         MealSlot = "Dinner"
	SlotEveningSnack   MealSlot = "Evening Snack"
)

var MealSlots = []MealSlot{
	SlotBreakfast,
	SlotMorningSnack,
	SlotLunch,
	SlotAfternoonSnack,
	SlotDinner,
	SlotEveningSnack,
}

func ValidMealSlot(s MealSlot) bool {
	for _, slot := range MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SleepEntry is one night's sleep: bed and wake times as HH:MM strings,
// keyed by the wake-up date. At most one per day.
type SleepEntry struct {
	ID              string `json:"id"`
	BedTime         string `json:"bed_time"`
	WakeTime        string `json:"wake_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// MealEntry is what the capture pipeline hands back for one slot: the
// photo reference, a free-text note and the estimated nutrition.
type MealEntry struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PhotoRef   string    `json:"photo_ref,omitempty"`
	Note       string    `json:"note,omitempty"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	CapturedAt time.Time `json:"captured_at"`
}

// MetricValue is the per-kind payload of a DailyRecord. Exactly one of
// the fields is populated, selected by the record's MetricKind.
type MetricValue struct {
	WaterMl *int                   `json:"water_ml,omitempty"`
	Steps   *int                   `json:"steps,omitempty"`
	Sleep   *SleepEntry            `json:"sleep,omitempty"`
	Meals   map[MealSlot]MealEntry `json:"meals,omitempty"`
}

// Cumulative returns the counter payload for water/steps records, zero
// when unset.
func (v MetricValue) Cumulative(kind MetricKind) int {
	switch kind {
	case MetricWater:
		if v.WaterMl != nil {
			return *v.WaterMl
		}
	case MetricSteps:
		if v.Steps != nil {
			return *v.Steps
		}
	}
	return 0
}

// SetCumulative stores the counter payload for water/steps records.
func (v *MetricValue) SetCumulative(kind MetricKind, n int) {
	switch kind {
	case MetricWater:
		v.WaterMl = &n
	case MetricSteps:
		v.Steps = &n
	}
}

// Empty reports whether the value carries no payload at all; empty
// records left behind by deletions may be pruned.
func (v MetricValue) Empty() bool {
	return v.WaterMl == nil && v.Steps == nil && v.Sleep == nil && len(v.Meals) == 0
}

// DailyRecord is one day's entry in a metric ledger. Date is the
// YYYY-MM-DD key and is immutable once created. Goal freezes the target
// that was active when the day was last touched; changing the preference
// later never rewrites past days.
type DailyRecord struct {
	Date  string      `json:"date"`
	Goal  int         `json:"goal"`
	Value MetricValue `json:"value"`
}

// Clone returns a deep copy so callers can't mutate the ledger's
// resident state through a returned record.
func (r *DailyRecord) Clone() *DailyRecord {
	out := &DailyRecord{Date: r.Date, Goal: r.Goal}
	if r.Value.WaterMl != nil {
		ml := *r.Value.WaterMl
		out.Value.WaterMl = &ml
	}
	if r.Value.Steps != nil {
		st := *r.Value.Steps
		out.Value.Steps = &st
	}
	if r.Value.Sleep != nil {
		sl := *r.Value.Sleep
		out.Value.Sleep = &sl
	}
	if r.Value.Meals != nil {
		out.Value.Meals = make(map[MealSlot]MealEntry, len(r.Value.Meals))
		for slot, e := range r.Value.Meals {
			out.Value.Meals[slot] = e
		}
	}
	return out
}
