package models

import "time"

// UserDevice is one registered push target: the SNS platform endpoint
// minted for a device token. Enabled is the per-user notification
// toggle; the raw token is never stored, only its hash for dedupe.
type UserDevice struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Platform    string `gorm:"size:16"` // "android" | "ios"
	TokenHash   string `gorm:"size:64"`
	EndpointARN string `gorm:"size:256"`
	Enabled     bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
