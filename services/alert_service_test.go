package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmitWarnsOnFailedInsert(t *testing.T) {
	db, mock := newMockDB(t)
	core, logs := observer.New(zap.WarnLevel)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "alerts"`).
		WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	svc := NewAlertService(db, nil, nil, zap.New(core))
	svc.Emit(1, "goal", "You hit your water goal")

	require.Equal(t, 1, logs.FilterMessage("alert insert failed").Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}
