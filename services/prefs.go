package services

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/OtaoDavis/Tfit-app/models"

	"go.uber.org/zap"
)

// Active goal defaults: ml of water, steps, minutes of sleep.
var defaultGoals = map[models.MetricKind]int{
	models.MetricWater: 2000,
	models.MetricSteps: 10000,
	models.MetricSleep: 480,
	models.MetricMeals: 0,
}

// DefaultGoal returns the built-in target for a metric kind.
func DefaultGoal(kind models.MetricKind) int {
	return defaultGoals[kind]
}

// GoalPrefs holds each user's active goal per metric kind. Changing a
// goal takes effect for today and future days only; past records keep
// the goal that was frozen into them.
type GoalPrefs struct {
	sub Substrate
	log *zap.Logger

	mu    sync.RWMutex
	cache map[string]int
}

func NewGoalPrefs(sub Substrate, log *zap.Logger) *GoalPrefs {
	if log == nil {
		log = zap.NewNop()
	}
	return &GoalPrefs{sub: sub, log: log, cache: make(map[string]int)}
}

func prefKey(userID uint, kind models.MetricKind) string {
	return fmt.Sprintf("pref:%d:%s", userID, kind)
}

// Goal returns the user's active goal for the kind, falling back to the
// default when nothing valid is stored.
func (p *GoalPrefs) Goal(userID uint, kind models.MetricKind) int {
	key := prefKey(userID, kind)

	p.mu.RLock()
	if g, ok := p.cache[key]; ok {
		p.mu.RUnlock()
		return g
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if g, ok := p.cache[key]; ok {
		return g
	}

	goal := defaultGoals[kind]
	raw, ok, err := p.sub.Read(key)
	if err != nil {
		p.log.Warn("goal preference read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		if parsed, perr := strconv.Atoi(raw); perr == nil && parsed > 0 {
			goal = parsed
		} else {
			// stored garbage is treated as absent
			p.log.Warn("ignoring malformed goal preference", zap.String("key", key), zap.String("value", raw))
		}
	}
	p.cache[key] = goal
	return goal
}

// SetGoal stores a new active goal. The value must be strictly positive.
func (p *GoalPrefs) SetGoal(userID uint, kind models.MetricKind, goal int) error {
	if goal <= 0 {
		return validationErr("goal must be a positive number")
	}

	key := prefKey(userID, kind)
	p.mu.Lock()
	p.cache[key] = goal
	p.mu.Unlock()

	if err := p.sub.Write(key, strconv.Itoa(goal)); err != nil {
		p.log.Warn("goal preference flush failed", zap.String("key", key), zap.Error(err))
		return &PersistenceError{Key: key, Err: err}
	}
	return nil
}
