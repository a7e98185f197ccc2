package services

import (
	"fmt"
	"time"

	"github.com/OtaoDavis/Tfit-app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AlertService records user-facing alerts and pushes them out over the
// realtime hub and mobile push. Dependencies are injected explicitly so
// nothing here lives in package-level state.
type AlertService struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService // optional
	log  *zap.Logger
}

func NewAlertService(db *gorm.DB, hub *RealtimeHub, push *PushService, log *zap.Logger) *AlertService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AlertService{db: db, hub: hub, push: push, log: log}
}

func (s *AlertService) Emit(userID uint, typ, message string) {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	if s.db != nil {
		if err := s.db.Create(a).Error; err != nil {
			s.log.Warn("alert insert failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}
	if s.hub != nil {
		s.hub.BroadcastUser(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if s.push != nil {
		s.push.PushToUser(userID, "Tfit", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// GoalReached fires when a cumulative tracker first crosses its daily
// target.
func (s *AlertService) GoalReached(userID uint, kind models.MetricKind, value, goal int) {
	var msg string
	switch kind {
	case models.MetricWater:
		msg = fmt.Sprintf("You hit your water goal: %d ml of %d ml!", value, goal)
	case models.MetricSteps:
		msg = fmt.Sprintf("You hit your step goal: %d of %d steps!", value, goal)
	default:
		msg = fmt.Sprintf("Daily %s goal reached", kind)
	}
	s.Emit(userID, "goal", msg)
}
