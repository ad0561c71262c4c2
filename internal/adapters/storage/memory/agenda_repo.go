package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medical-practice/internal/domain/agenda"
)

type agendaRepo struct {
	mu   sync.RWMutex
	byID map[string]agenda.Appointment
}

func NewAgendaRepo() agenda.Repository {
	return &agendaRepo{
		byID: make(map[string]agenda.Appointment),
	}
}

func (r *agendaRepo) Create(ctx context.Context, a agenda.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *agendaRepo) Update(ctx context.Context, a agenda.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *agendaRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *agendaRepo) GetByID(ctx context.Context, id string) (agenda.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return agenda.Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *agendaRepo) ListByDoctor(ctx context.Context, doctorID string) ([]agenda.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]agenda.Appointment, 0)
	for _, a := range r.byID {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].SortKey() < out[j].SortKey()
	})

	return out, nil
}
