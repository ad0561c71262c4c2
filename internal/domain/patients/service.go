package patients

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"medical-practice/internal/platform/brdoc"
	"medical-practice/internal/platform/pagination"
	"medical-practice/internal/platform/search"
	"medical-practice/internal/platform/timeparse"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidCPF     = errors.New("invalid cpf")
	ErrDuplicateCPF   = errors.New("cpf already registered")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("not found")
)

// Tamaño de página fijo de la lista de pacientes.
const PageSize = 6

type Service struct {
	repo   Repository
	lookup AddressLookup // puede ser nil
	now    func() time.Time
}

func NewService(repo Repository, lookup AddressLookup) *Service {
	return &Service{
		repo:   repo,
		lookup: lookup,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name        string
	CPF         string
	DateOfBirth string
	Phone       string
	Email       string
	District    string
	City        string
	State       string
	CEP         string
	Gender      string
	BloodType   string
	Allergies   string
	Conditions  string
}

func (s *Service) Create(ctx context.Context, doctorID string, in CreateInput) (Patient, error) {
	if strings.TrimSpace(doctorID) == "" {
		return Patient{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.DateOfBirth) == "" {
		return Patient{}, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.DateOfBirth); err != nil {
		return Patient{}, ErrInvalidInput
	}
	if !brdoc.ValidCPF(in.CPF) {
		return Patient{}, ErrInvalidCPF
	}
	cpf := brdoc.Digits(in.CPF)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	// Duplicados solo dentro del set del mismo médico.
	existing, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return Patient{}, err
	}
	for _, p := range existing {
		if p.CPF == cpf {
			return Patient{}, ErrDuplicateCPF
		}
		if email != "" && strings.EqualFold(p.Email, email) {
			return Patient{}, ErrDuplicateEmail
		}
	}

	now := s.now()
	p := Patient{
		ID:          uuid.NewString(),
		DoctorID:    doctorID,
		Name:        name,
		CPF:         cpf,
		DateOfBirth: in.DateOfBirth,
		Phone:       brdoc.Digits(in.Phone),
		Email:       email,
		District:    strings.TrimSpace(in.District),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		CEP:         brdoc.Digits(in.CEP),
		Gender:      strings.TrimSpace(in.Gender),
		BloodType:   strings.TrimSpace(in.BloodType),
		Allergies:   strings.TrimSpace(in.Allergies),
		Conditions:  strings.TrimSpace(in.Conditions),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// GetOwned devuelve el paciente solo si pertenece al médico; ajeno o
// inexistente son indistinguibles para el caller (ambos not-found).
func (s *Service) GetOwned(ctx context.Context, doctorID, id string) (Patient, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Patient{}, ErrNotFound
	}
	if p.DoctorID != doctorID {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

type ListResult struct {
	Items []Patient
	Page  pagination.Page
}

// List: más nuevos primero, búsqueda libre (término vacío muestra todo)
// y páginas fijas de PageSize.
func (s *Service) List(ctx context.Context, doctorID, query string, page int) (ListResult, error) {
	all, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return ListResult{}, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return timeparse.ToMillis(all[i].CreatedAt) > timeparse.ToMillis(all[j].CreatedAt)
	})

	matches := search.Filter(toCandidates(all), query, true)

	byID := make(map[string]Patient, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	filtered := make([]Patient, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, byID[m.Key])
	}

	items, meta := pagination.Paginate(filtered, page, PageSize)
	return ListResult{Items: items, Page: meta}, nil
}

// Pick es la búsqueda del selector de paciente en los formularios de
// documentos: término vacío no devuelve nada.
func (s *Service) Pick(ctx context.Context, doctorID, query string) ([]Patient, error) {
	all, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	matches := search.Filter(toCandidates(all), query, false)

	byID := make(map[string]Patient, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	out := make([]Patient, 0, len(matches))
	for _, m := range matches {
		out = append(out, byID[m.Key])
	}
	return out, nil
}

type UpdateInput struct {
	Name        *string
	CPF         *string
	DateOfBirth *string
	Phone       *string
	Email       *string
	District    *string
	City        *string
	State       *string
	CEP         *string
	Gender      *string
	BloodType   *string
	Allergies   *string
	Conditions  *string
}

func (s *Service) Update(ctx context.Context, doctorID, id string, in UpdateInput) (Patient, error) {
	p, err := s.GetOwned(ctx, doctorID, id)
	if err != nil {
		return Patient{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Patient{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.CPF != nil {
		if !brdoc.ValidCPF(*in.CPF) {
			return Patient{}, ErrInvalidCPF
		}
		cpf := brdoc.Digits(*in.CPF)
		if cpf != p.CPF {
			others, err := s.repo.ListByDoctor(ctx, doctorID)
			if err != nil {
				return Patient{}, err
			}
			for _, o := range others {
				if o.ID != p.ID && o.CPF == cpf {
					return Patient{}, ErrDuplicateCPF
				}
			}
		}
		p.CPF = cpf
	}
	if in.DateOfBirth != nil {
		if _, err := time.Parse("2006-01-02", *in.DateOfBirth); err != nil {
			return Patient{}, ErrInvalidInput
		}
		p.DateOfBirth = *in.DateOfBirth
	}
	if in.Phone != nil {
		p.Phone = brdoc.Digits(*in.Phone)
	}
	if in.Email != nil {
		p.Email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if in.District != nil {
		p.District = strings.TrimSpace(*in.District)
	}
	if in.City != nil {
		p.City = strings.TrimSpace(*in.City)
	}
	if in.State != nil {
		p.State = strings.TrimSpace(*in.State)
	}
	if in.CEP != nil {
		p.CEP = brdoc.Digits(*in.CEP)
	}
	if in.Gender != nil {
		p.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.BloodType != nil {
		p.BloodType = strings.TrimSpace(*in.BloodType)
	}
	if in.Allergies != nil {
		p.Allergies = strings.TrimSpace(*in.Allergies)
	}
	if in.Conditions != nil {
		p.Conditions = strings.TrimSpace(*in.Conditions)
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// Delete es irreversible; el paso de confirmación es responsabilidad de la UI.
func (s *Service) Delete(ctx context.Context, doctorID, id string) error {
	if _, err := s.GetOwned(ctx, doctorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// LookupAddress precarga dirección desde el CEP. Sin lookup configurado
// devuelve not-found; el formulario sigue funcionando a mano.
func (s *Service) LookupAddress(ctx context.Context, cep string) (Address, error) {
	clean := brdoc.Digits(cep)
	if len(clean) != 8 {
		return Address{}, ErrInvalidInput
	}
	if s.lookup == nil {
		return Address{}, ErrNotFound
	}
	addr, err := s.lookup.Lookup(ctx, clean)
	if err != nil {
		return Address{}, ErrNotFound
	}
	return addr, nil
}

func toCandidates(list []Patient) []search.Candidate {
	out := make([]search.Candidate, 0, len(list))
	for _, p := range list {
		out = append(out, search.Candidate{Key: p.ID, Name: p.Name, Digits: p.CPF})
	}
	return out
}
