package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "medical-practice/internal/adapters/storage/memory"
	pg "medical-practice/internal/adapters/storage/postgres"
	"medical-practice/internal/domain/agenda"
	"medical-practice/internal/domain/calculators"
	"medical-practice/internal/domain/clinics"
	"medical-practice/internal/domain/doctors"
	"medical-practice/internal/domain/documents"
	"medical-practice/internal/domain/patients"
	"medical-practice/internal/domain/reports"
	"medical-practice/internal/middleware"
	"medical-practice/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Options struct {
	AuthVerifier auth.TokenVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer   // puede ser nil; login devuelve error sin issuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcionales: los módulos degradan sin ellos.
	AddressLookup patients.AddressLookup
	ReportsCache  reports.Cache
	Exporter      reports.Exporter

	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var (
		doctorRepo  doctors.Repository
		patientRepo patients.Repository
		agendaRepo  agenda.Repository
		docRepo     documents.Repository
		clinicRepo  clinics.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		doctorRepo = pg.NewDoctorsRepo(db)
		patientRepo = pg.NewPatientsRepo(db)
		agendaRepo = pg.NewAgendaRepo(db)
		docRepo = pg.NewDocumentsRepo(db)
		clinicRepo = pg.NewClinicsRepo(db)
	} else {
		doctorRepo = mem.NewDoctorsRepo()
		patientRepo = mem.NewPatientsRepo()
		agendaRepo = mem.NewAgendaRepo()
		docRepo = mem.NewDocumentsRepo()
		clinicRepo = mem.NewClinicsRepo()
	}

	// Services por módulo
	doctorsSvc := doctors.NewService(doctorRepo, opts.TokenIssuer, log)
	patientsSvc := patients.NewService(patientRepo, opts.AddressLookup)
	agendaSvc := agenda.NewService(agendaRepo, patientsSvc)
	docsSvc := documents.NewService(docRepo, patientsSvc, log)
	clinicsSvc := clinics.NewService(clinicRepo)
	reportsSvc := reports.NewService(docRepo, patientRepo, opts.ReportsCache, log)

	// Rutas por módulo
	doctors.RegisterRoutes(r, doctorsSvc)
	patients.RegisterRoutes(r, patientsSvc)
	agenda.RegisterRoutes(r, agendaSvc)
	documents.RegisterRoutes(r, docsSvc, doctorsSvc)
	clinics.RegisterRoutes(r, clinicsSvc)
	reports.RegisterRoutes(r, reportsSvc, opts.Exporter, log)
	calculators.RegisterRoutes(r)

	return r
}
