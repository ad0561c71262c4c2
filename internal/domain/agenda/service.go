package agenda

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"medical-practice/internal/domain/patients"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrPatientNotFound = errors.New("patient not found")
	ErrNotFound        = errors.New("not found")
)

type Service struct {
	repo        Repository
	patientsSvc *patients.Service
	now         func() time.Time
}

func NewService(repo Repository, patientsSvc *patients.Service) *Service {
	return &Service{
		repo:        repo,
		patientsSvc: patientsSvc,
		now:         time.Now,
	}
}

type Input struct {
	PatientID string
	Date      string
	Time      string
	Task      string
}

func (s *Service) validate(in Input) error {
	if strings.TrimSpace(in.PatientID) == "" || strings.TrimSpace(in.Task) == "" {
		return ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return ErrInvalidInput
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, doctorID string, in Input) (Appointment, error) {
	if strings.TrimSpace(doctorID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if err := s.validate(in); err != nil {
		return Appointment{}, err
	}

	// El paciente debe existir y ser del mismo médico.
	p, err := s.patientsSvc.GetOwned(ctx, doctorID, in.PatientID)
	if err != nil {
		return Appointment{}, ErrPatientNotFound
	}

	now := s.now()
	a := Appointment{
		ID:          uuid.NewString(),
		DoctorID:    doctorID,
		PatientID:   p.ID,
		PatientName: p.Name,
		Date:        in.Date,
		Time:        in.Time,
		Task:        strings.TrimSpace(in.Task),
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) getOwned(ctx context.Context, doctorID, id string) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil || a.DoctorID != doctorID {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

// Update reemplaza todos los campos editables (el formulario manda todo).
func (s *Service) Update(ctx context.Context, doctorID, id string, in Input) (Appointment, error) {
	a, err := s.getOwned(ctx, doctorID, id)
	if err != nil {
		return Appointment{}, err
	}
	if err := s.validate(in); err != nil {
		return Appointment{}, err
	}

	p, err := s.patientsSvc.GetOwned(ctx, doctorID, in.PatientID)
	if err != nil {
		return Appointment{}, ErrPatientNotFound
	}

	a.PatientID = p.ID
	a.PatientName = p.Name
	a.Date = in.Date
	a.Time = in.Time
	a.Task = strings.TrimSpace(in.Task)
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// SetCompleted marca o desmarca el check de atendido.
func (s *Service) SetCompleted(ctx context.Context, doctorID, id string, completed bool) (Appointment, error) {
	a, err := s.getOwned(ctx, doctorID, id)
	if err != nil {
		return Appointment{}, err
	}

	a.Completed = completed
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, doctorID, id string) error {
	if _, err := s.getOwned(ctx, doctorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

type ListFilter struct {
	Date  string // filtro exacto YYYY-MM-DD, vacío = todas
	Query string // texto libre sobre nombre de paciente y tarea
}

// List devuelve la agenda ordenada cronológicamente (date+time asc).
func (s *Service) List(ctx context.Context, doctorID string, f ListFilter) ([]Appointment, error) {
	all, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Appointment, 0, len(all))
	for _, a := range all {
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(a.PatientName), q) &&
			!strings.Contains(strings.ToLower(a.Task), q) {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortKey() < out[j].SortKey()
	})
	return out, nil
}
