package postgres

import (
	"context"
	"database/sql"
	"strings"

	"medical-practice/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

const patientColumns = `
	id, doctor_id, name, cpf, date_of_birth, phone, email,
	district, city, state, cep, gender, blood_type,
	allergies, conditions, created_at, updated_at
`

func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (`+patientColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		p.ID, p.DoctorID, p.Name, p.CPF, p.DateOfBirth, p.Phone, p.Email,
		p.District, p.City, p.State, p.CEP, p.Gender, p.BloodType,
		p.Allergies, p.Conditions, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET
			name = $2,
			cpf = $3,
			date_of_birth = $4,
			phone = $5,
			email = $6,
			district = $7,
			city = $8,
			state = $9,
			cep = $10,
			gender = $11,
			blood_type = $12,
			allergies = $13,
			conditions = $14,
			updated_at = $15
		WHERE id = $1
	`,
		p.ID, p.Name, p.CPF, p.DateOfBirth, p.Phone, p.Email,
		p.District, p.City, p.State, p.CEP, p.Gender, p.BloodType,
		p.Allergies, p.Conditions, p.UpdatedAt,
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

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return patients.Patient{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE id = $1
	`, id)

	p, err := scanPatient(row)
	if err == sql.ErrNoRows {
		return patients.Patient{}, ErrNotFound
	}
	return p, err
}

func (r *PatientsRepo) ListByDoctor(ctx context.Context, doctorID string) ([]patients.Patient, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE doctor_id = $1
		ORDER BY created_at ASC
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (patients.Patient, error) {
	var p patients.Patient
	err := row.Scan(
		&p.ID, &p.DoctorID, &p.Name, &p.CPF, &p.DateOfBirth, &p.Phone, &p.Email,
		&p.District, &p.City, &p.State, &p.CEP, &p.Gender, &p.BloodType,
		&p.Allergies, &p.Conditions, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
