package reports

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"medical-practice/internal/domain/documents"
	"medical-practice/internal/domain/patients"
	"medical-practice/internal/platform/timeparse"
)

// Cache guarda reportes ya calculados por poco tiempo. Cualquier falla
// del cache degrada a recalcular, nunca a error.
type Cache interface {
	Get(ctx context.Context, key string) (Weekly, bool)
	Set(ctx context.Context, key string, w Weekly)
}

// Exporter baja un reporte semanal a bytes de planilla.
type Exporter interface {
	WeeklyXLSX(w Weekly) ([]byte, error)
}

var dayNames = [7]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

type Service struct {
	docsRepo     documents.Repository
	patientsRepo patients.Repository
	cache        Cache // puede ser nil
	log          *zap.Logger
	now          func() time.Time
}

func NewService(docsRepo documents.Repository, patientsRepo patients.Repository, cache Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		docsRepo:     docsRepo,
		patientsRepo: patientsRepo,
		cache:        cache,
		log:          log,
		now:          time.Now,
	}
}

// StartOfWeek lleva t al lunes de su semana, medianoche local.
// Domingo cuenta como día 7: retrocede 6.
func StartOfWeek(t time.Time) time.Time {
	diff := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		diff = 6
	}
	d := t.AddDate(0, 0, -diff)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// EndOfWeek: domingo 23:59:59.999 local.
func EndOfWeek(t time.Time) time.Time {
	start := StartOfWeek(t)
	return start.AddDate(0, 0, 6).
		Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)
}

// Weekly arma el reporte del médico para la semana de "hoy".
func (s *Service) Weekly(ctx context.Context, doctorID string) (Weekly, error) {
	start := StartOfWeek(s.now())

	key := fmt.Sprintf("reports:weekly:%s:%s", doctorID, start.Format("2006-01-02"))
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	docs, err := s.docsRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return Weekly{}, err
	}
	pats, err := s.patientsRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return Weekly{}, err
	}

	out := build(docs, len(pats), s.now())

	if s.cache != nil {
		s.cache.Set(ctx, key, out)
	}
	return out, nil
}

// build es el cálculo puro, separado para poder testearlo con fechas fijas.
func build(docs []documents.Document, totalPatients int, today time.Time) Weekly {
	start := StartOfWeek(today)
	end := EndOfWeek(today)
	startMs := start.UnixMilli()
	endMs := end.UnixMilli()

	out := Weekly{
		WeekStart:     start,
		WeekEnd:       end,
		Days:          make([]DayBucket, 0, 7),
		TotalPatients: totalPatients,
	}

	// Buckets de los 7 días, lunes a domingo.
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		out.Days = append(out.Days, DayBucket{
			Date:    day,
			Label:   day.Format("02/01/2006"),
			DayName: dayNames[day.Weekday()],
		})
	}

	seen := make(map[string]struct{})
	for _, d := range docs {
		ms := timeparse.ToMillis(d.CreatedAt)

		switch d.Kind {
		case documents.KindPrescription:
			out.TotalPrescriptions++
		case documents.KindRecipe:
			out.TotalRecipes++
		default:
			continue
		}
		if d.PatientID != "" {
			seen[d.PatientID] = struct{}{}
		}

		// Filtro de semana inclusivo en ambos extremos.
		if ms < startMs || ms > endMs {
			continue
		}

		for i := range out.Days {
			dayStart := out.Days[i].Date.UnixMilli()
			dayEnd := out.Days[i].Date.AddDate(0, 0, 1).UnixMilli()
			if ms >= dayStart && ms < dayEnd {
				out.Days[i].Total++
				if d.Kind == documents.KindPrescription {
					out.Days[i].Prescriptions++
				} else {
					out.Days[i].Recipes++
				}
				break
			}
		}
	}

	for i := range out.Days {
		out.WeekTotal += out.Days[i].Total
	}
	out.DailyAverage = float64(out.WeekTotal) / 7

	// Día con más atendimientos: el primero en orden cronológico gana empates.
	busiest := 0
	for i := range out.Days {
		if out.Days[i].Total > out.Days[busiest].Total {
			busiest = i
		}
	}
	if out.Days[busiest].Total > 0 {
		b := out.Days[busiest]
		out.BusiestDay = &b
	}

	out.UniquePatients = len(seen)
	out.TotalAttendances = out.TotalPrescriptions + out.TotalRecipes
	if out.TotalAttendances > 0 {
		out.PrescriptionShare = float64(out.TotalPrescriptions) / float64(out.TotalAttendances) * 100
		out.RecipeShare = float64(out.TotalRecipes) / float64(out.TotalAttendances) * 100
	}

	return out
}
