package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB returns a gorm handle over a sqlmock connection so the
// database-backed services can be exercised without postgres.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestHabitToggleRejectsFutureDate(t *testing.T) {
	svc := NewHabitService(nil)

	_, err := svc.Toggle(1, "2999-01-01", "water")
	assert.True(t, IsValidation(err))
}

func TestHabitToggleRejectsUnknownHabit(t *testing.T) {
	svc := NewHabitService(nil)

	_, err := svc.Toggle(1, "2020-01-02", "meditate")
	assert.True(t, IsValidation(err))

	_, err = svc.Toggle(1, "02/01/2020", "water")
	assert.True(t, IsValidation(err))
}

func TestHabitToggleLastCheckedOffDeletesRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewHabitService(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "date", "checked"}).
		AddRow(5, 1, "2020-01-02", []byte(`{"water": true}`))
	mock.ExpectQuery(`SELECT \* FROM "habit_logs"`).WillReturnRows(rows)

	// unchecking the only box empties the day, so the row goes away
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "habit_logs" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	checked, err := svc.Toggle(1, "2020-01-02", "water")
	require.NoError(t, err)
	assert.Empty(t, checked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitToggleKeepsRowWithRemainingChecks(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewHabitService(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "date", "checked"}).
		AddRow(5, 1, "2020-01-02", []byte(`{"water": true, "sleep": true}`))
	mock.ExpectQuery(`SELECT \* FROM "habit_logs"`).WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "habit_logs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	checked, err := svc.Toggle(1, "2020-01-02", "water")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"sleep": true}, checked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHabitDayAbsentRowReadsUnchecked(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewHabitService(db)

	mock.ExpectQuery(`SELECT \* FROM "habit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	checked, err := svc.Day(1, "2020-01-02")
	require.NoError(t, err)
	assert.Empty(t, checked)
}
