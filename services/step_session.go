package services

import (
	"sync"

	"github.com/OtaoDavis/Tfit-app/models"
)

// stepSession tracks one user's live pedometer subscription. The feed
// reports steps cumulative since subscription start, so the session
// keeps the last reading and merges only the delta since then into the
// ledger.
type stepSession struct {
	dateKey        string
	lastCumulative int
}

type stepSessions struct {
	mu          sync.Mutex
	byUser      map[uint]*stepSession
	unavailable map[uint]bool
}

func newStepSessions() *stepSessions {
	return &stepSessions{
		byUser:      make(map[uint]*stepSession),
		unavailable: make(map[uint]bool),
	}
}

// SetStepSensorAvailability marks step counting as available or not for
// a user's device. While unavailable, readings are rejected and no
// record is mutated.
func (t *TrackerService) SetStepSensorAvailability(userID uint, available bool) {
	t.steps.mu.Lock()
	defer t.steps.mu.Unlock()
	if available {
		delete(t.steps.unavailable, userID)
	} else {
		t.steps.unavailable[userID] = true
		delete(t.steps.byUser, userID)
	}
}

// RecordSteps ingests one cumulative pedometer reading. Deltas are
// merged into today's record as they arrive; when a reading lands on a
// new calendar day, the in-flight delta is finalized into the outgoing
// day's record before the session baseline resets, so steps taken just
// before midnight stay on the day they were taken.
func (t *TrackerService) RecordSteps(userID uint, cumulative int) (*models.DailyRecord, error) {
	if cumulative < 0 {
		return nil, validationErr("cumulative step count must not be negative")
	}

	t.steps.mu.Lock()
	if t.steps.unavailable[userID] {
		t.steps.mu.Unlock()
		return nil, ErrSensorUnavailable
	}

	today := t.todayKey()
	sess := t.steps.byUser[userID]
	if sess == nil {
		// first reading anchors the baseline; nothing to merge yet
		t.steps.byUser[userID] = &stepSession{dateKey: today, lastCumulative: cumulative}
		t.steps.mu.Unlock()
		return t.addCumulative(userID, models.MetricSteps, today, 0)
	}

	delta := cumulative - sess.lastCumulative
	if delta < 0 {
		// the subscription restarted and its counter reset
		delta = 0
	}
	sess.lastCumulative = cumulative

	if sess.dateKey != today {
		outgoing := sess.dateKey
		sess.dateKey = today
		t.steps.mu.Unlock()

		if _, err := t.addCumulative(userID, models.MetricSteps, outgoing, delta); err != nil && !IsPersistence(err) {
			return nil, err
		}
		return t.addCumulative(userID, models.MetricSteps, today, 0)
	}

	t.steps.mu.Unlock()
	return t.addCumulative(userID, models.MetricSteps, today, delta)
}

// EndStepSession drops the session baseline when the subscription stops.
// All deltas were merged as they arrived, so there is nothing left to
// persist.
func (t *TrackerService) EndStepSession(userID uint) {
	t.steps.mu.Lock()
	delete(t.steps.byUser, userID)
	t.steps.mu.Unlock()
}
