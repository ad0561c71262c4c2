package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medical-practice/internal/domain/clinics"
)

type clinicsRepo struct {
	mu   sync.RWMutex
	byID map[string]clinics.Clinic
}

func NewClinicsRepo() clinics.Repository {
	return &clinicsRepo{
		byID: make(map[string]clinics.Clinic),
	}
}

func (r *clinicsRepo) Create(ctx context.Context, c clinics.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("clinic id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("clinic already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *clinicsRepo) Update(ctx context.Context, c clinics.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *clinicsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *clinicsRepo) GetByID(ctx context.Context, id string) (clinics.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return clinics.Clinic{}, ErrNotFound
	}
	return c, nil
}

func (r *clinicsRepo) ListByDoctor(ctx context.Context, doctorID string) ([]clinics.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clinics.Clinic, 0)
	for _, c := range r.byID {
		if c.DoctorID == doctorID {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
