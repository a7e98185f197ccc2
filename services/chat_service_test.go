package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatPostRejectsBlankText(t *testing.T) {
	svc := NewChatService(nil, nil)

	_, err := svc.Post(1, "Ana", "", "   ")
	assert.True(t, IsValidation(err), "whitespace-only text must not reach the database")
}

func TestChatHistoryAscendingOrder(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewChatService(db, nil)

	now := time.Now()
	// the query fetches newest first; History hands them back oldest first
	rows := sqlmock.NewRows([]string{"id", "user_id", "sender_name", "text", "created_at"}).
		AddRow("m3", 1, "Ana", "third", now).
		AddRow("m2", 2, "Ben", "second", now.Add(-time.Minute)).
		AddRow("m1", 1, "Ana", "first", now.Add(-2*time.Minute))
	mock.ExpectQuery(`SELECT \* FROM "chat_messages" ORDER BY created_at DESC`).
		WillReturnRows(rows)

	msgs, err := svc.History(3)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.Equal(t, "third", msgs[2].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatHistoryLimitClamped(t *testing.T) {
	assert.Equal(t, 100, historyLimit(0))
	assert.Equal(t, 100, historyLimit(-5))
	assert.Equal(t, 100, historyLimit(500))
	assert.Equal(t, 50, historyLimit(50))
	assert.Equal(t, 200, historyLimit(200))
}
