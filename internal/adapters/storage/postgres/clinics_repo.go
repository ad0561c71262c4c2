package postgres

import (
	"context"
	"database/sql"
	"strings"

	"medical-practice/internal/domain/clinics"
)

type ClinicsRepo struct {
	db *sql.DB
}

func NewClinicsRepo(db *sql.DB) *ClinicsRepo {
	return &ClinicsRepo{db: db}
}

func (r *ClinicsRepo) Create(ctx context.Context, c clinics.Clinic) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clinics (id, doctor_id, name, address, phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID, c.DoctorID, c.Name, c.Address, c.Phone, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *ClinicsRepo) Update(ctx context.Context, c clinics.Clinic) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clinics
		SET
			name = $2,
			address = $3,
			phone = $4,
			updated_at = $5
		WHERE id = $1
	`,
		c.ID, c.Name, c.Address, c.Phone, c.UpdatedAt,
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

func (r *ClinicsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clinics WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ClinicsRepo) GetByID(ctx context.Context, id string) (clinics.Clinic, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clinics.Clinic{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, doctor_id, name, address, phone, created_at, updated_at
		FROM clinics
		WHERE id = $1
	`, id)

	var c clinics.Clinic
	if err := row.Scan(&c.ID, &c.DoctorID, &c.Name, &c.Address, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return clinics.Clinic{}, ErrNotFound
		}
		return clinics.Clinic{}, err
	}
	return c, nil
}

func (r *ClinicsRepo) ListByDoctor(ctx context.Context, doctorID string) ([]clinics.Clinic, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, doctor_id, name, address, phone, created_at, updated_at
		FROM clinics
		WHERE doctor_id = $1
		ORDER BY created_at ASC
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clinics.Clinic, 0)
	for rows.Next() {
		var c clinics.Clinic
		if err := rows.Scan(&c.ID, &c.DoctorID, &c.Name, &c.Address, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}
