package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StressCalm     = "calm"
	StressOkay     = "okay"
	StressStressed = "stressed"
)

type StressLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Level    string    `gorm:"size:16;not null"` // "calm" | "okay" | "stressed"
	Notes    string    `gorm:"type:text"`
	LoggedAt time.Time `gorm:"index;not null"`
}
