package reports

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"medical-practice/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, exporter Exporter, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	r.Route("/reports", func(rr chi.Router) {
		rr.Get("/weekly", weeklyHandler(svc))
		rr.Get("/weekly/export", exportHandler(svc, exporter, log))
	})
}

func weeklyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := svc.Weekly(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(rep)
	}
}

func exportHandler(svc *Service, exporter Exporter, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if exporter == nil {
			http.Error(w, "export not available", http.StatusNotImplemented)
			return
		}

		rep, err := svc.Weekly(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		data, err := exporter.WeeklyXLSX(rep)
		if err != nil {
			log.Error("export weekly report", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("relatorio_semanal_%s.xlsx", rep.WeekStart.Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
