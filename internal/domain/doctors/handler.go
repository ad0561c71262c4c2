package doctors

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"medical-practice/internal/middleware"
	"medical-practice/internal/platform/brdoc"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc))
		ar.Post("/password-reset", requestResetHandler(svc))
		ar.Post("/password-reset/confirm", confirmResetHandler(svc))
	})

	r.Route("/me", func(mr chi.Router) {
		mr.Get("/", getProfileHandler(svc))
		mr.Patch("/", updateProfileHandler(svc))
	})
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CPF             string `json:"cpf"`
	CRM             string `json:"crm"`
	CRMUF           string `json:"crm_uf"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type doctorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	CRM       string    `json:"crm"`
	CRMUF     string    `json:"crm_uf,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toDoctorResponse(d Doctor) doctorResponse {
	return doctorResponse{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		CPF:       brdoc.FormatCPF(d.CPF),
		CRM:       d.CRM,
		CRMUF:     d.CRMUF,
		Phone:     brdoc.FormatPhone(d.Phone),
		Avatar:    d.Avatar,
		CreatedAt: d.CreatedAt,
	}
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Register(r.Context(), RegisterInput{
			Name:            req.Name,
			Email:           req.Email,
			CPF:             req.CPF,
			CRM:             req.CRM,
			CRMUF:           req.CRMUF,
			Phone:           req.Phone,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			switch err {
			case ErrEmailTaken, ErrCPFTaken, ErrCRMTaken:
				http.Error(w, err.Error(), http.StatusConflict)
			case ErrInvalidInput, ErrWeakPassword, ErrPasswordsDontMatch:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toDoctorResponse(d))
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string         `json:"token"`
	Doctor doctorResponse `json:"doctor"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			// Mensaje único para credenciales malas: no filtrar si el email existe.
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{Token: token, Doctor: toDoctorResponse(d)})
	}
}

func requestResetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.RequestPasswordReset(r.Context(), req.Email); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}

		// 202 siempre: la respuesta no dice si el email estaba registrado.
		w.WriteHeader(http.StatusAccepted)
	}
}

func confirmResetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Token       string `json:"token"`
			NewPassword string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.ConfirmPasswordReset(r.Context(), req.Token, req.NewPassword); err != nil {
			switch err {
			case ErrWeakPassword:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "reset token invalid or expired", http.StatusBadRequest)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		d, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toDoctorResponse(d))
	}
}

type updateProfileRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
}

func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.UpdateProfile(r.Context(), claims.UserID, UpdateProfileInput{
			Name:   req.Name,
			Phone:  req.Phone,
			Avatar: req.Avatar,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toDoctorResponse(d))
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// mismo criterio que en el resto del código: todavía no amerita helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
