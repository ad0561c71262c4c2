package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"medical-practice/internal/domain/doctors"
)

var ErrNotFound = errors.New("not found")

type doctorsRepo struct {
	mu   sync.RWMutex
	byID map[string]doctors.Doctor
}

func NewDoctorsRepo() doctors.Repository {
	return &doctorsRepo{
		byID: make(map[string]doctors.Doctor),
	}
}

func (r *doctorsRepo) Create(ctx context.Context, d doctors.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(d.ID) == "" {
		return errors.New("doctor id required")
	}
	if _, exists := r.byID[d.ID]; exists {
		return errors.New("doctor already exists")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *doctorsRepo) Update(ctx context.Context, d doctors.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[d.ID]; !exists {
		return ErrNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *doctorsRepo) GetByID(ctx context.Context, id string) (doctors.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return doctors.Doctor{}, ErrNotFound
	}
	return d, nil
}

func (r *doctorsRepo) GetByEmail(ctx context.Context, email string) (doctors.Doctor, error) {
	return r.find(func(d doctors.Doctor) bool { return strings.EqualFold(d.Email, email) })
}

func (r *doctorsRepo) GetByCPF(ctx context.Context, cpf string) (doctors.Doctor, error) {
	return r.find(func(d doctors.Doctor) bool { return d.CPF == cpf })
}

func (r *doctorsRepo) GetByCRM(ctx context.Context, crm string) (doctors.Doctor, error) {
	return r.find(func(d doctors.Doctor) bool { return d.CRM == crm })
}

func (r *doctorsRepo) GetByResetToken(ctx context.Context, token string) (doctors.Doctor, error) {
	return r.find(func(d doctors.Doctor) bool { return d.ResetToken != "" && d.ResetToken == token })
}

func (r *doctorsRepo) find(match func(doctors.Doctor) bool) (doctors.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.byID {
		if match(d) {
			return d, nil
		}
	}
	return doctors.Doctor{}, ErrNotFound
}
