package postgres

import (
	"context"
	"database/sql"
	"strings"

	"medical-practice/internal/domain/agenda"
)

type AgendaRepo struct {
	db *sql.DB
}

func NewAgendaRepo(db *sql.DB) *AgendaRepo {
	return &AgendaRepo{db: db}
}

const appointmentColumns = `
	id, doctor_id, patient_id, patient_name,
	date, time, task, completed, created_at, updated_at
`

func (r *AgendaRepo) Create(ctx context.Context, a agenda.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID, a.DoctorID, a.PatientID, a.PatientName,
		a.Date, a.Time, a.Task, a.Completed, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *AgendaRepo) Update(ctx context.Context, a agenda.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			patient_id = $2,
			patient_name = $3,
			date = $4,
			time = $5,
			task = $6,
			completed = $7,
			updated_at = $8
		WHERE id = $1
	`,
		a.ID, a.PatientID, a.PatientName,
		a.Date, a.Time, a.Task, a.Completed, a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AgendaRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AgendaRepo) GetByID(ctx context.Context, id string) (agenda.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return agenda.Appointment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, id)

	var a agenda.Appointment
	if err := row.Scan(
		&a.ID, &a.DoctorID, &a.PatientID, &a.PatientName,
		&a.Date, &a.Time, &a.Task, &a.Completed, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return agenda.Appointment{}, ErrNotFound
		}
		return agenda.Appointment{}, err
	}
	return a, nil
}

func (r *AgendaRepo) ListByDoctor(ctx context.Context, doctorID string) ([]agenda.Appointment, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE doctor_id = $1
		ORDER BY date ASC, time ASC
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]agenda.Appointment, 0)
	for rows.Next() {
		var a agenda.Appointment
		if err := rows.Scan(
			&a.ID, &a.DoctorID, &a.PatientID, &a.PatientName,
			&a.Date, &a.Time, &a.Task, &a.Completed, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}
