package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HabitLog holds one day's habit checkboxes. Checked maps habit id to
// true; unchecked habits are simply absent. One row per (user, date).
type HabitLog struct {
	gorm.Model
	UserID  uint              `gorm:"not null;uniqueIndex:uidx_habit_user_date"`
	Date    string            `gorm:"size:10;not null;uniqueIndex:uidx_habit_user_date"` // YYYY-MM-DD
	Checked datatypes.JSONMap `gorm:"type:jsonb"`
}
