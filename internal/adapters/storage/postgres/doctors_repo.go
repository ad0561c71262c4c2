package postgres

import (
	"context"
	"database/sql"
	"time"

	"medical-practice/internal/domain/doctors"
)

type DoctorsRepo struct {
	db *sql.DB
}

func NewDoctorsRepo(db *sql.DB) *DoctorsRepo {
	return &DoctorsRepo{db: db}
}

const doctorColumns = `
	id, name, email, cpf, crm, crm_uf, phone, avatar,
	password_hash, reset_token, reset_token_expires,
	created_at, updated_at
`

func (r *DoctorsRepo) Create(ctx context.Context, d doctors.Doctor) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO doctors (`+doctorColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		d.ID, d.Name, d.Email, d.CPF, d.CRM, d.CRMUF, d.Phone, d.Avatar,
		d.PasswordHash, nullStr(d.ResetToken), toNullTime(d.ResetTokenExpires),
		d.CreatedAt, d.UpdatedAt,
	)
	return err
}

func (r *DoctorsRepo) Update(ctx context.Context, d doctors.Doctor) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE doctors
		SET
			name = $2,
			email = $3,
			cpf = $4,
			crm = $5,
			crm_uf = $6,
			phone = $7,
			avatar = $8,
			password_hash = $9,
			reset_token = $10,
			reset_token_expires = $11,
			updated_at = $12
		WHERE id = $1
	`,
		d.ID, d.Name, d.Email, d.CPF, d.CRM, d.CRMUF, d.Phone, d.Avatar,
		d.PasswordHash, nullStr(d.ResetToken), toNullTime(d.ResetTokenExpires),
		d.UpdatedAt,
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

func (r *DoctorsRepo) GetByID(ctx context.Context, id string) (doctors.Doctor, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *DoctorsRepo) GetByEmail(ctx context.Context, email string) (doctors.Doctor, error) {
	return r.getBy(ctx, "lower(email) = lower($1)", email)
}

func (r *DoctorsRepo) GetByCPF(ctx context.Context, cpf string) (doctors.Doctor, error) {
	return r.getBy(ctx, "cpf = $1", cpf)
}

func (r *DoctorsRepo) GetByCRM(ctx context.Context, crm string) (doctors.Doctor, error) {
	return r.getBy(ctx, "crm = $1", crm)
}

func (r *DoctorsRepo) GetByResetToken(ctx context.Context, token string) (doctors.Doctor, error) {
	return r.getBy(ctx, "reset_token = $1", token)
}

func (r *DoctorsRepo) getBy(ctx context.Context, where string, arg any) (doctors.Doctor, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+doctorColumns+`
		FROM doctors
		WHERE `+where, arg)

	var d doctors.Doctor
	var resetToken sql.NullString
	var resetExp sql.NullTime
	if err := row.Scan(
		&d.ID, &d.Name, &d.Email, &d.CPF, &d.CRM, &d.CRMUF, &d.Phone, &d.Avatar,
		&d.PasswordHash, &resetToken, &resetExp,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return doctors.Doctor{}, ErrNotFound
		}
		return doctors.Doctor{}, err
	}

	d.ResetToken = resetToken.String
	if resetExp.Valid {
		t := resetExp.Time
		d.ResetTokenExpires = &t
	}
	return d, nil
}

func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
