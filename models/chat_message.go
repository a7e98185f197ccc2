package models

import "time"

// One message in the community chat room.
type ChatMessage struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	SenderName   string    `gorm:"size:120" json:"sender_name"`
	SenderAvatar string    `json:"sender_avatar,omitempty"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}
