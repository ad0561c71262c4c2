package documents

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medical-practice/internal/domain/patients"
	"medical-practice/internal/platform/pagination"
	"medical-practice/internal/platform/search"
	"medical-practice/internal/platform/timeparse"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrPatientNotFound = errors.New("patient not found")
	ErrNotFound        = errors.New("not found")
)

const (
	// Validez por defecto de una receta.
	DefaultValidityDays = 30
	// Tamaño de página del listado combinado.
	PageSize = 10
)

type Service struct {
	repo        Repository
	patientsSvc *patients.Service
	log         *zap.Logger
	now         func() time.Time
}

func NewService(repo Repository, patientsSvc *patients.Service, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:        repo,
		patientsSvc: patientsSvc,
		log:         log,
		now:         time.Now,
	}
}

type CreateInput struct {
	Kind         Kind
	PatientID    string
	Medications  []Medication
	Observations string

	// Solo receta:
	Controlled   bool
	ValidityDays int
	IssueDate    string
}

// Create valida y emite el documento. Nombre y dirección del paciente
// quedan como snapshot: el documento no cambia si la ficha cambia después.
func (s *Service) Create(ctx context.Context, doctorID string, in CreateInput) (Document, error) {
	if strings.TrimSpace(doctorID) == "" {
		return Document{}, ErrInvalidInput
	}
	if in.Kind != KindPrescription && in.Kind != KindRecipe {
		return Document{}, ErrInvalidInput
	}
	if len(in.Medications) == 0 {
		return Document{}, ErrInvalidInput
	}
	meds := make([]Medication, 0, len(in.Medications))
	for _, m := range in.Medications {
		m.Name = strings.TrimSpace(m.Name)
		m.Dosage = strings.TrimSpace(m.Dosage)
		m.Frequency = strings.TrimSpace(m.Frequency)
		m.Duration = strings.TrimSpace(m.Duration)
		m.Instructions = strings.TrimSpace(m.Instructions)
		if m.Name == "" || m.Dosage == "" || m.Frequency == "" {
			return Document{}, ErrInvalidInput
		}
		meds = append(meds, m)
	}

	p, err := s.patientsSvc.GetOwned(ctx, doctorID, in.PatientID)
	if err != nil {
		return Document{}, ErrPatientNotFound
	}

	d := Document{
		ID:           uuid.NewString(),
		DoctorID:     doctorID,
		Kind:         in.Kind,
		PatientID:    p.ID,
		PatientName:  p.Name,
		Medications:  meds,
		Observations: strings.TrimSpace(in.Observations),
		CreatedAt:    s.now(),
	}

	if in.Kind == KindRecipe {
		d.Controlled = in.Controlled
		d.ValidityDays = in.ValidityDays
		if d.ValidityDays <= 0 {
			d.ValidityDays = DefaultValidityDays
		}
		d.IssueDate = strings.TrimSpace(in.IssueDate)
		if d.IssueDate == "" {
			d.IssueDate = s.now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", d.IssueDate); err != nil {
			return Document{}, ErrInvalidInput
		}
		d.PatientAddress = formatAddress(p)
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return Document{}, err
	}
	return d, nil
}

func (s *Service) GetOwned(ctx context.Context, doctorID, id string) (Document, error) {
	d, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil || d.DoctorID != doctorID {
		return Document{}, ErrNotFound
	}
	return d, nil
}

// Delete existe por simetría con el resto de los módulos; la UI original
// no expone edición ni borrado de documentos emitidos.
func (s *Service) Delete(ctx context.Context, doctorID, id string) error {
	if _, err := s.GetOwned(ctx, doctorID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

type ListResult struct {
	Items []Document
	Page  pagination.Page
}

// List combina ambos tipos, más nuevos primero, con búsqueda por nombre
// de paciente (término vacío muestra todo) y paginado fijo.
func (s *Service) List(ctx context.Context, doctorID, query string, kind Kind, page int) (ListResult, error) {
	all, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return ListResult{}, err
	}

	if kind != "" {
		tmp := all[:0]
		for _, d := range all {
			if d.Kind == kind {
				tmp = append(tmp, d)
			}
		}
		all = tmp
	}

	sort.SliceStable(all, func(i, j int) bool {
		return timeparse.ToMillis(all[i].CreatedAt) > timeparse.ToMillis(all[j].CreatedAt)
	})

	cands := make([]search.Candidate, 0, len(all))
	for _, d := range all {
		cands = append(cands, search.Candidate{Key: d.ID, Name: d.PatientName})
	}
	matches := search.Filter(cands, query, true)

	byID := make(map[string]Document, len(all))
	for _, d := range all {
		byID[d.ID] = d
	}
	filtered := make([]Document, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, byID[m.Key])
	}

	items, meta := pagination.Paginate(filtered, page, PageSize)
	return ListResult{Items: items, Page: meta}, nil
}

type ImportItem struct {
	Kind         Kind
	PatientID    string
	PatientName  string
	Medications  []Medication
	Observations string
	Controlled   bool
	ValidityDays int
	IssueDate    string
	// CreatedAt llega en cualquier representación del sistema anterior:
	// epoch millis, string ISO, objeto timestamp o ausente.
	CreatedAt any
}

type ImportResult struct {
	Imported int
	Skipped  int
}

// Import es el backfill desde el store anterior. Pasa cada created_at
// por la normalización de timestamps; irreconocible => momento del import.
func (s *Service) Import(ctx context.Context, doctorID string, items []ImportItem) (ImportResult, error) {
	if strings.TrimSpace(doctorID) == "" {
		return ImportResult{}, ErrInvalidInput
	}

	var res ImportResult
	for _, it := range items {
		if it.Kind != KindPrescription && it.Kind != KindRecipe {
			res.Skipped++
			continue
		}
		if strings.TrimSpace(it.PatientName) == "" || len(it.Medications) == 0 {
			res.Skipped++
			continue
		}

		createdAt := s.now()
		if ms := timeparse.ToMillis(it.CreatedAt); ms > 0 {
			createdAt = time.UnixMilli(ms)
		}

		d := Document{
			ID:           uuid.NewString(),
			DoctorID:     doctorID,
			Kind:         it.Kind,
			PatientID:    strings.TrimSpace(it.PatientID),
			PatientName:  strings.TrimSpace(it.PatientName),
			Medications:  it.Medications,
			Observations: strings.TrimSpace(it.Observations),
			Controlled:   it.Controlled,
			ValidityDays: it.ValidityDays,
			IssueDate:    strings.TrimSpace(it.IssueDate),
			CreatedAt:    createdAt,
		}
		if err := s.repo.Create(ctx, d); err != nil {
			s.log.Warn("import document", zap.Error(err))
			res.Skipped++
			continue
		}
		res.Imported++
	}
	return res, nil
}

func formatAddress(p patients.Patient) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.District, p.City, p.State, p.CEP} {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	return strings.Join(parts, ", ")
}
