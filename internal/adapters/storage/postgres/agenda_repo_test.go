package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medical-practice/internal/domain/agenda"
)

func TestAgendaRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAgendaRepo(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "doctor_id", "patient_id", "patient_name",
		"date", "time", "task", "completed", "created_at", "updated_at",
	}).AddRow(
		"apt-1", "doc-1", "pat-1", "Maria Silva",
		"2026-03-02", "14:30", "Consulta de rotina", false, now, now,
	)

	mock.ExpectQuery(`SELECT`).WithArgs("apt-1").WillReturnRows(rows)

	a, err := repo.GetByID(context.Background(), "apt-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", a.DoctorID)
	assert.Equal(t, "2026-03-02", a.Date)
	assert.Equal(t, "14:30", a.Time)
	assert.False(t, a.Completed)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAgendaRepo_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAgendaRepo(db)

	mock.ExpectQuery(`SELECT`).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgendaRepo_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAgendaRepo(db)

	mock.ExpectExec(`UPDATE appointments`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), agenda.Appointment{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}
