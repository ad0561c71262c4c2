package documents

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"medical-practice/internal/domain/doctors"
	"medical-practice/internal/middleware"
	"medical-practice/internal/platform/pagination"
)

func RegisterRoutes(r chi.Router, svc *Service, doctorsSvc *doctors.Service) {
	r.Route("/documents", func(dr chi.Router) {
		dr.Post("/", createHandler(svc))
		dr.Get("/", listHandler(svc))
		dr.Post("/import", importHandler(svc))
		dr.Get("/{documentID}", getHandler(svc))
		dr.Get("/{documentID}/render", renderHandler(svc, doctorsSvc))
		dr.Delete("/{documentID}", deleteHandler(svc))
	})
}

type medicationPayload struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type createRequest struct {
	Kind         string              `json:"kind"` // prescription | recipe
	PatientID    string              `json:"patient_id"`
	Medications  []medicationPayload `json:"medications"`
	Observations string              `json:"observations"`
	Controlled   bool                `json:"controlled"`
	ValidityDays int                 `json:"validity_days"`
	IssueDate    string              `json:"issue_date"`
}

type documentResponse struct {
	ID             string              `json:"id"`
	DoctorID       string              `json:"doctor_id"`
	Kind           string              `json:"kind"`
	PatientID      string              `json:"patient_id"`
	PatientName    string              `json:"patient_name"`
	Medications    []medicationPayload `json:"medications"`
	Observations   string              `json:"observations,omitempty"`
	Controlled     bool                `json:"controlled,omitempty"`
	ValidityDays   int                 `json:"validity_days,omitempty"`
	IssueDate      string              `json:"issue_date,omitempty"`
	PatientAddress string              `json:"patient_address,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

func toMedications(in []medicationPayload) []Medication {
	out := make([]Medication, 0, len(in))
	for _, m := range in {
		out = append(out, Medication(m))
	}
	return out
}

func toResponse(d Document) documentResponse {
	meds := make([]medicationPayload, 0, len(d.Medications))
	for _, m := range d.Medications {
		meds = append(meds, medicationPayload(m))
	}
	return documentResponse{
		ID:             d.ID,
		DoctorID:       d.DoctorID,
		Kind:           string(d.Kind),
		PatientID:      d.PatientID,
		PatientName:    d.PatientName,
		Medications:    meds,
		Observations:   d.Observations,
		Controlled:     d.Controlled,
		ValidityDays:   d.ValidityDays,
		IssueDate:      d.IssueDate,
		PatientAddress: d.PatientAddress,
		CreatedAt:      d.CreatedAt,
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Kind:         Kind(req.Kind),
			PatientID:    req.PatientID,
			Medications:  toMedications(req.Medications),
			Observations: req.Observations,
			Controlled:   req.Controlled,
			ValidityDays: req.ValidityDays,
			IssueDate:    req.IssueDate,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput, ErrPatientNotFound:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toResponse(d))
	}
}

type listResponse struct {
	Items []documentResponse `json:"items"`
	Page  pagination.Page    `json:"pagination"`
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		kind := Kind(r.URL.Query().Get("kind"))
		if kind != "" && kind != KindPrescription && kind != KindRecipe {
			http.Error(w, "kind must be prescription or recipe", http.StatusBadRequest)
			return
		}

		res, err := svc.List(r.Context(), claims.UserID, r.URL.Query().Get("q"), kind, page)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		items := make([]documentResponse, 0, len(res.Items))
		for _, d := range res.Items {
			items = append(items, toResponse(d))
		}
		writeJSON(w, http.StatusOK, listResponse{Items: items, Page: res.Page})
	}
}

type importRequest struct {
	Items []struct {
		Kind         string              `json:"kind"`
		PatientID    string              `json:"patient_id"`
		PatientName  string              `json:"patient_name"`
		Medications  []medicationPayload `json:"medications"`
		Observations string              `json:"observations"`
		Controlled   bool                `json:"controlled"`
		ValidityDays int                 `json:"validity_days"`
		IssueDate    string              `json:"issue_date"`
		CreatedAt    any                 `json:"created_at"` // millis, ISO string o ausente
	} `json:"items"`
}

func importHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		items := make([]ImportItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, ImportItem{
				Kind:         Kind(it.Kind),
				PatientID:    it.PatientID,
				PatientName:  it.PatientName,
				Medications:  toMedications(it.Medications),
				Observations: it.Observations,
				Controlled:   it.Controlled,
				ValidityDays: it.ValidityDays,
				IssueDate:    it.IssueDate,
				CreatedAt:    it.CreatedAt,
			})
		}

		res, err := svc.Import(r.Context(), claims.UserID, items)
		if err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, map[string]int{
			"imported": res.Imported,
			"skipped":  res.Skipped,
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

		d, err := svc.GetOwned(r.Context(), claims.UserID, chi.URLParam(r, "documentID"))
		if err != nil {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toResponse(d))
	}
}

func renderHandler(svc *Service, doctorsSvc *doctors.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		d, err := svc.GetOwned(r.Context(), claims.UserID, chi.URLParam(r, "documentID"))
		if err != nil {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		// Membrete: si la ficha del médico no está completa, se renderiza
		// igual con lo que haya.
		var info DoctorInfo
		if doc, err := doctorsSvc.GetByID(r.Context(), claims.UserID); err == nil {
			info = DoctorInfo{Name: doc.Name, CRM: doc.CRM, CRMUF: doc.CRMUF, Phone: doc.Phone}
		}

		writeJSON(w, http.StatusOK, Render(d, info))
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "documentID")); err != nil {
			http.Error(w, "document not found", http.StatusNotFound)
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
