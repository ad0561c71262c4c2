package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"medical-practice/internal/domain/documents"
)

type DocumentsRepo struct {
	db *sql.DB
}

func NewDocumentsRepo(db *sql.DB) *DocumentsRepo {
	return &DocumentsRepo{db: db}
}

const documentColumns = `
	id, doctor_id, kind, patient_id, patient_name,
	medications, observations, controlled, validity_days,
	issue_date, patient_address, created_at
`

func (r *DocumentsRepo) Create(ctx context.Context, d documents.Document) error {
	// La lista ordenada de medicamentos va como JSONB.
	meds, err := json.Marshal(d.Medications)
	if err != nil {
		return fmt.Errorf("marshal medications: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO clinical_documents (`+documentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		d.ID, d.DoctorID, string(d.Kind), d.PatientID, d.PatientName,
		meds, d.Observations, d.Controlled, d.ValidityDays,
		d.IssueDate, d.PatientAddress, d.CreatedAt,
	)
	return err
}

func (r *DocumentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clinical_documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DocumentsRepo) GetByID(ctx context.Context, id string) (documents.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return documents.Document{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM clinical_documents
		WHERE id = $1
	`, id)

	d, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return documents.Document{}, ErrNotFound
	}
	return d, err
}

func (r *DocumentsRepo) ListByDoctor(ctx context.Context, doctorID string) ([]documents.Document, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+documentColumns+`
		FROM clinical_documents
		WHERE doctor_id = $1
		ORDER BY created_at ASC
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]documents.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func scanDocument(row rowScanner) (documents.Document, error) {
	var d documents.Document
	var kind string
	var meds []byte
	if err := row.Scan(
		&d.ID, &d.DoctorID, &kind, &d.PatientID, &d.PatientName,
		&meds, &d.Observations, &d.Controlled, &d.ValidityDays,
		&d.IssueDate, &d.PatientAddress, &d.CreatedAt,
	); err != nil {
		return documents.Document{}, err
	}

	d.Kind = documents.Kind(kind)
	if len(meds) > 0 {
		if err := json.Unmarshal(meds, &d.Medications); err != nil {
			return documents.Document{}, fmt.Errorf("unmarshal medications: %w", err)
		}
	}
	return d, nil
}
