package services

import (
	"strings"
	"time"

	"github.com/OtaoDavis/Tfit-app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatService persists the community chat room and fans new messages out
// to every connected client through the hub.
type ChatService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewChatService(db *gorm.DB, hub *RealtimeHub) *ChatService {
	return &ChatService{db: db, hub: hub}
}

func (s *ChatService) Post(userID uint, senderName, senderAvatar, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationErr("message text is required")
	}
	if senderName == "" {
		senderName = "Member"
	}

	msg := &models.ChatMessage{
		ID:           uuid.NewString(),
		UserID:       userID,
		SenderName:   senderName,
		SenderAvatar: senderAvatar,
		Text:         text,
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastAll(map[string]any{
			"kind":    "chat.message",
			"message": msg,
		})
	}
	return msg, nil
}

// historyLimit clamps a requested page size into (0, 200].
func historyLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 100
	}
	return limit
}

// History returns the most recent messages in chronological order.
func (s *ChatService) History(limit int) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.
		Order("created_at DESC").
		Limit(historyLimit(limit)).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	// reverse into ascending order for rendering
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
