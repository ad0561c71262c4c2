package patients

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"medical-practice/internal/middleware"
	"medical-practice/internal/platform/brdoc"
	"medical-practice/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Post("/", createHandler(svc))
		pr.Get("/", listHandler(svc))
		pr.Get("/pick", pickHandler(svc))
		pr.Get("/address", addressHandler(svc))
		pr.Get("/{patientID}", getHandler(svc))
		pr.Patch("/{patientID}", updateHandler(svc))
		pr.Delete("/{patientID}", deleteHandler(svc))
	})
}

type patientRequest struct {
	Name        string `json:"name"`
	CPF         string `json:"cpf"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	District    string `json:"district"`
	City        string `json:"city"`
	State       string `json:"state"`
	CEP         string `json:"cep"`
	Gender      string `json:"gender"`
	BloodType   string `json:"blood_type"`
	Allergies   string `json:"allergies"`
	Conditions  string `json:"conditions"`
}

type patientResponse struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctor_id"`
	Name        string    `json:"name"`
	CPF         string    `json:"cpf"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	District    string    `json:"district,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	CEP         string    `json:"cep,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	BloodType   string    `json:"blood_type,omitempty"`
	Allergies   string    `json:"allergies,omitempty"`
	Conditions  string    `json:"conditions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listResponse struct {
	Items []patientResponse `json:"items"`
	Page  pagination.Page   `json:"pagination"`
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:          p.ID,
		DoctorID:    p.DoctorID,
		Name:        p.Name,
		CPF:         brdoc.FormatCPF(p.CPF),
		DateOfBirth: p.DateOfBirth,
		Phone:       brdoc.FormatPhone(p.Phone),
		Email:       p.Email,
		District:    p.District,
		City:        p.City,
		State:       p.State,
		CEP:         p.CEP,
		Gender:      p.Gender,
		BloodType:   p.BloodType,
		Allergies:   p.Allergies,
		Conditions:  p.Conditions,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req patientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			CPF:         req.CPF,
			DateOfBirth: req.DateOfBirth,
			Phone:       req.Phone,
			Email:       req.Email,
			District:    req.District,
			City:        req.City,
			State:       req.State,
			CEP:         req.CEP,
			Gender:      req.Gender,
			BloodType:   req.BloodType,
			Allergies:   req.Allergies,
			Conditions:  req.Conditions,
		})
		if err != nil {
			switch err {
			case ErrDuplicateCPF, ErrDuplicateEmail:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrInvalidInput, ErrInvalidCPF:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// La página llega por query en cada request: cambiar el término de
		// búsqueda implica que la UI pida page=1 de nuevo.
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		res, err := svc.List(r.Context(), claims.UserID, r.URL.Query().Get("q"), page)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		items := make([]patientResponse, 0, len(res.Items))
		for _, p := range res.Items {
			items = append(items, toPatientResponse(p))
		}
		writeJSON(w, http.StatusOK, listResponse{Items: items, Page: res.Page})
	}
}

func pickHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.Pick(r.Context(), claims.UserID, r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func addressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		addr, err := svc.LookupAddress(r.Context(), r.URL.Query().Get("cep"))
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, "cep must have 8 digits", http.StatusBadRequest)
			default:
				http.Error(w, "cep not found", http.StatusNotFound)
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"cep":      addr.CEP,
			"street":   addr.Street,
			"district": addr.District,
			"city":     addr.City,
			"state":    addr.State,
		})
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetOwned(r.Context(), claims.UserID, chi.URLParam(r, "patientID"))
		if err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

type updatePatientRequest struct {
	Name        *string `json:"name"`
	CPF         *string `json:"cpf"`
	DateOfBirth *string `json:"date_of_birth"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	District    *string `json:"district"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	CEP         *string `json:"cep"`
	Gender      *string `json:"gender"`
	BloodType   *string `json:"blood_type"`
	Allergies   *string `json:"allergies"`
	Conditions  *string `json:"conditions"`
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updatePatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "patientID"), UpdateInput{
			Name:        req.Name,
			CPF:         req.CPF,
			DateOfBirth: req.DateOfBirth,
			Phone:       req.Phone,
			Email:       req.Email,
			District:    req.District,
			City:        req.City,
			State:       req.State,
			CEP:         req.CEP,
			Gender:      req.Gender,
			BloodType:   req.BloodType,
			Allergies:   req.Allergies,
			Conditions:  req.Conditions,
		})
		if err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "patient not found", http.StatusNotFound)
			case ErrDuplicateCPF:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrInvalidInput, ErrInvalidCPF:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "patientID")); err != nil {
			http.Error(w, "patient not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
