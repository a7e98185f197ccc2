package services

import (
	"errors"

	"github.com/OtaoDavis/Tfit-app/models"
	"github.com/OtaoDavis/Tfit-app/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Habit struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// The fixed daily habit checklist.
var Habits = []Habit{
	{ID: "water", Label: "Drank 6+ glasses of water"},
	{ID: "move", Label: "I was active for the day"},
	{ID: "eat_mindfully", Label: "Ate to 80% fullness"},
	{ID: "sleep", Label: "Slept 7-8 hours"},
	{ID: "shmec", Label: "Checked SHMEC"},
	{ID: "journal", Label: "Journaled / Reflected"},
}

func validHabitID(id string) bool {
	for _, h := range Habits {
		if h.ID == id {
			return true
		}
	}
	return false
}

type HabitService struct {
	db *gorm.DB
}

func NewHabitService(db *gorm.DB) *HabitService {
	return &HabitService{db: db}
}

// Toggle flips one habit's checkbox for a day. Future days are
// rejected; a day whose boxes are all cleared is pruned.
func (s *HabitService) Toggle(userID uint, dateKey, habitID string) (map[string]bool, error) {
	if !validHabitID(habitID) {
		return nil, validationErr("unknown habit %q", habitID)
	}
	if dateKey == "" {
		dateKey = utils.TodayKey()
	} else if _, err := utils.ParseDateKey(dateKey); err != nil {
		return nil, validationErr("invalid date %q, expected YYYY-MM-DD", dateKey)
	}
	if dateKey > utils.TodayKey() {
		return nil, validationErr("cannot log habits for a future date")
	}

	var log models.HabitLog
	err := s.db.Where("user_id = ? AND date = ?", userID, dateKey).First(&log).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		log = models.HabitLog{UserID: userID, Date: dateKey, Checked: datatypes.JSONMap{}}
	}
	if log.Checked == nil {
		log.Checked = datatypes.JSONMap{}
	}

	if checked, _ := log.Checked[habitID].(bool); checked {
		delete(log.Checked, habitID)
	} else {
		log.Checked[habitID] = true
	}

	if len(log.Checked) == 0 && log.ID != 0 {
		if err := s.db.Delete(&log).Error; err != nil {
			return nil, err
		}
		return map[string]bool{}, nil
	}
	if err := s.db.Save(&log).Error; err != nil {
		return nil, err
	}
	return checkedMap(log.Checked), nil
}

// Day returns the checkbox state for one day; absent rows read as all
// unchecked.
func (s *HabitService) Day(userID uint, dateKey string) (map[string]bool, error) {
	if _, err := utils.ParseDateKey(dateKey); err != nil {
		return nil, validationErr("invalid date %q, expected YYYY-MM-DD", dateKey)
	}
	var log models.HabitLog
	err := s.db.Where("user_id = ? AND date = ?", userID, dateKey).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]bool{}, nil
		}
		return nil, err
	}
	return checkedMap(log.Checked), nil
}

// History lists habit days newest first.
func (s *HabitService) History(userID uint) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func checkedMap(m datatypes.JSONMap) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		if b, ok := v.(bool); ok && b {
			out[k] = true
		}
	}
	return out
}
