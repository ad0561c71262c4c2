package clinics

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"medical-practice/internal/platform/brdoc"
	"medical-practice/internal/platform/timeparse"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	Address string
	Phone   string
}

func (s *Service) Create(ctx context.Context, doctorID string, in CreateInput) (Clinic, error) {
	if strings.TrimSpace(doctorID) == "" {
		return Clinic{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Clinic{}, ErrInvalidInput
	}

	now := s.now()
	c := Clinic{
		ID:        uuid.NewString(),
		DoctorID:  doctorID,
		Name:      name,
		Address:   strings.TrimSpace(in.Address),
		Phone:     brdoc.Digits(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Clinic{}, err
	}
	return c, nil
}

func (s *Service) getOwned(ctx context.Context, doctorID, id string) (Clinic, error) {
	c, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil || c.DoctorID != doctorID {
		return Clinic{}, ErrNotFound
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, doctorID string) ([]Clinic, error) {
	items, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return timeparse.ToMillis(items[i].CreatedAt) > timeparse.ToMillis(items[j].CreatedAt)
	})
	return items, nil
}

type UpdateInput struct {
	Name    *string
	Address *string
	Phone   *string
}

func (s *Service) Update(ctx context.Context, doctorID, id string, in UpdateInput) (Clinic, error) {
	c, err := s.getOwned(ctx, doctorID, id)
	if err != nil {
		return Clinic{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Clinic{}, ErrInvalidInput
		}
		c.Name = name
	}
	if in.Address != nil {
		c.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		c.Phone = brdoc.Digits(*in.Phone)
	}

	c.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, c); err != nil {
		return Clinic{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, doctorID, id string) error {
	if _, err := s.getOwned(ctx, doctorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
