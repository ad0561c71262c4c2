package calculators

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medical-practice/internal/middleware"
)

func RegisterRoutes(r chi.Router) {
	r.Route("/calculators", func(cr chi.Router) {
		cr.Post("/imc", imcHandler())
		cr.Post("/tmb", tmbHandler())
	})
}

type calcRequest struct {
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	AgeYears      int     `json:"age_years"`
	Sex           string  `json:"sex"`            // masculino | feminino
	ActivityLevel string  `json:"activity_level"` // sedentario | leve | moderado | ativo | extremo
}

func imcHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req calcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := ComputeBMI(BMIInput{
			WeightKg: req.WeightKg,
			HeightCm: req.HeightCm,
			AgeYears: req.AgeYears,
			Sex:      Sex(req.Sex),
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"imc":            res.BMI,
			"classification": res.Classification,
			"tmb":            res.BasalRate,
		})
	}
}

func tmbHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req calcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := ComputeMetabolism(MetabolismInput{
			WeightKg:      req.WeightKg,
			HeightCm:      req.HeightCm,
			AgeYears:      req.AgeYears,
			Sex:           Sex(req.Sex),
			ActivityLevel: ActivityLevel(req.ActivityLevel),
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"tmb":             res.BasalRate,
			"get":             res.Total,
			"activity_factor": res.Factor,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
