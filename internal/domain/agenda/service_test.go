package agenda_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "medical-practice/internal/adapters/storage/memory"
	"medical-practice/internal/domain/agenda"
	"medical-practice/internal/domain/patients"
)

const doctorID = "doc-1"

func setup(t *testing.T) (*agenda.Service, patients.Patient) {
	t.Helper()
	patientsSvc := patients.NewService(mem.NewPatientsRepo(), nil)
	p, err := patientsSvc.Create(context.Background(), doctorID, patients.CreateInput{
		Name:        "Maria Silva",
		CPF:         "11122233344",
		DateOfBirth: "1990-05-10",
	})
	require.NoError(t, err)
	return agenda.NewService(mem.NewAgendaRepo(), patientsSvc), p
}

func TestCreate_SnapshotsPatientName(t *testing.T) {
	svc, p := setup(t)

	a, err := svc.Create(context.Background(), doctorID, agenda.Input{
		PatientID: p.ID,
		Date:      "2026-03-04",
		Time:      "14:30",
		Task:      "Consulta de rotina",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", a.PatientName)
	assert.False(t, a.Completed)
}

func TestCreate_Validation(t *testing.T) {
	svc, p := setup(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   agenda.Input
		want error
	}{
		{"fecha inválida", agenda.Input{PatientID: p.ID, Date: "04/03/2026", Time: "14:30", Task: "x"}, agenda.ErrInvalidInput},
		{"hora inválida", agenda.Input{PatientID: p.ID, Date: "2026-03-04", Time: "2pm", Task: "x"}, agenda.ErrInvalidInput},
		{"sin tarea", agenda.Input{PatientID: p.ID, Date: "2026-03-04", Time: "14:30"}, agenda.ErrInvalidInput},
		{"paciente ajeno", agenda.Input{PatientID: "otro", Date: "2026-03-04", Time: "14:30", Task: "x"}, agenda.ErrPatientNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, doctorID, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestList_ChronologicalWithFilters(t *testing.T) {
	svc, p := setup(t)
	ctx := context.Background()

	mk := func(date, hhmm, task string) {
		_, err := svc.Create(ctx, doctorID, agenda.Input{PatientID: p.ID, Date: date, Time: hhmm, Task: task})
		require.NoError(t, err)
	}
	mk("2026-03-05", "09:00", "Retorno")
	mk("2026-03-04", "14:30", "Consulta")
	mk("2026-03-04", "08:00", "Exame de sangue")

	all, err := svc.List(ctx, doctorID, agenda.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Exame de sangue", all[0].Task)
	assert.Equal(t, "Consulta", all[1].Task)
	assert.Equal(t, "Retorno", all[2].Task)

	byDate, err := svc.List(ctx, doctorID, agenda.ListFilter{Date: "2026-03-04"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byQuery, err := svc.List(ctx, doctorID, agenda.ListFilter{Query: "sangue"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "Exame de sangue", byQuery[0].Task)

	byName, err := svc.List(ctx, doctorID, agenda.ListFilter{Query: "maria"})
	require.NoError(t, err)
	assert.Len(t, byName, 3)
}

func TestSetCompleted_Toggle(t *testing.T) {
	svc, p := setup(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, doctorID, agenda.Input{PatientID: p.ID, Date: "2026-03-04", Time: "14:30", Task: "Consulta"})
	require.NoError(t, err)

	a, err = svc.SetCompleted(ctx, doctorID, a.ID, true)
	require.NoError(t, err)
	assert.True(t, a.Completed)

	a, err = svc.SetCompleted(ctx, doctorID, a.ID, false)
	require.NoError(t, err)
	assert.False(t, a.Completed)

	_, err = svc.SetCompleted(ctx, "doc-2", a.ID, true)
	assert.ErrorIs(t, err, agenda.ErrNotFound)
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	svc, p := setup(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, doctorID, agenda.Input{PatientID: p.ID, Date: "2026-03-04", Time: "14:30", Task: "Consulta"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "doc-2", a.ID), agenda.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, doctorID, a.ID))

	all, err := svc.List(ctx, doctorID, agenda.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}
