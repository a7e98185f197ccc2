package services

import (
	"time"

	"github.com/OtaoDavis/Tfit-app/models"

	"gorm.io/gorm"
)

var dailyTips = []string{
	"Take 5 deep breaths, focusing on the air entering and leaving your body.",
	"Step away from your screen for 5 minutes and stretch.",
	"Write down three things you are grateful for today.",
	"Listen to a calming song or nature sounds.",
	"Go for a short walk, even if it's just around the room.",
	"Practice a mindful minute: focus all your senses on the present moment.",
	"Identify one small, manageable task you can complete right now.",
	"Reach out to a friend or loved one for a quick chat.",
}

type StressService struct {
	db *gorm.DB
}

func NewStressService(db *gorm.DB) *StressService {
	return &StressService{db: db}
}

func (s *StressService) Log(userID uint, level, notes string) (*models.StressLog, error) {
	switch level {
	case models.StressCalm, models.StressOkay, models.StressStressed:
	default:
		return nil, validationErr("unknown stress level %q", level)
	}

	entry := &models.StressLog{
		UserID:   userID,
		Level:    level,
		Notes:    notes,
		LoggedAt: time.Now(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *StressService) List(userID uint, limit int) ([]models.StressLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []models.StressLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// DailyTip rotates through the tip list, one per calendar day.
func (s *StressService) DailyTip() string {
	return dailyTips[time.Now().YearDay()%len(dailyTips)]
}
