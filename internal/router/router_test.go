package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medical-practice/internal/router"
)

func TestHTTP_EndToEnd_PracticeFlow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	doctorID := "doctor-1"
	otherID := "doctor-2"

	// 1) Médico registra paciente
	patientID := createPatient(t, ts.URL, doctorID, map[string]any{
		"name":          "Maria Silva",
		"cpf":           "111.222.333-44",
		"date_of_birth": "1990-05-10",
		"phone":         "(11) 98765-4321",
		"city":          "São Paulo",
		"state":         "SP",
	})

	// 2) Otro médico no ve al paciente
	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/"+patientID, otherID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for other doctor's patient, got %d", st)
		}
	}

	// 3) Listado con búsqueda encuentra por prefijo de nombre
	{
		st, body := doReq(t, ts.URL, "GET", "/patients/?q=mar", doctorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list patients, got %d body=%s", st, string(body))
		}
		var resp struct {
			Items []struct {
				CPF string `json:"cpf"`
			} `json:"items"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Items) != 1 {
			t.Fatalf("expected 1 patient, got %d body=%s", len(resp.Items), string(body))
		}
		// CPF sale formateado en las respuestas.
		if resp.Items[0].CPF != "111.222.333-44" {
			t.Fatalf("expected formatted cpf, got %q", resp.Items[0].CPF)
		}
	}

	// 4) Agenda una consulta para hoy
	today := time.Now().Format("2006-01-02")
	apptID := createAppointment(t, ts.URL, doctorID, map[string]any{
		"patient_id": patientID,
		"date":       today,
		"time":       "14:30",
		"task":       "Consulta de rotina",
	})

	// 5) Marca la consulta como atendida
	{
		st, body := doReq(t, ts.URL, "PATCH", "/appointments/"+apptID+"/completed", doctorID, map[string]any{
			"completed": true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete appointment, got %d body=%s", st, string(body))
		}
	}

	// 6) Emite una receta
	docID := createDocument(t, ts.URL, doctorID, map[string]any{
		"kind":       "recipe",
		"patient_id": patientID,
		"controlled": false,
		"medications": []map[string]any{
			{"name": "Amoxicilina", "dosage": "500mg", "frequency": "8/8h"},
		},
	})

	// 7) El render trae título y nombre de archivo derivado del paciente
	{
		st, body := doReq(t, ts.URL, "GET", "/documents/"+docID+"/render", doctorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 render document, got %d body=%s", st, string(body))
		}
		var layout struct {
			Title    string `json:"title"`
			Filename string `json:"filename"`
		}
		_ = json.Unmarshal(body, &layout)
		if layout.Title != "Receita Médica" {
			t.Fatalf("unexpected title %q", layout.Title)
		}
		if layout.Filename != "Maria_Silva_receita" {
			t.Fatalf("unexpected filename %q", layout.Filename)
		}
	}

	// 8) El reporte semanal cuenta la receta de hoy
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/weekly", doctorID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 weekly report, got %d body=%s", st, string(body))
		}
		var resp struct {
			WeekTotal      int `json:"week_total"`
			TotalRecipes   int `json:"total_recipes"`
			TotalPatients  int `json:"total_patients"`
			UniquePatients int `json:"unique_patients"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.WeekTotal != 1 || resp.TotalRecipes != 1 {
			t.Fatalf("unexpected report counts body=%s", string(body))
		}
		if resp.TotalPatients != 1 || resp.UniquePatients != 1 {
			t.Fatalf("unexpected patient counts body=%s", string(body))
		}
	}

	// 9) El otro médico tiene su reporte vacío
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/weekly", otherID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 weekly report, got %d", st)
		}
		var resp struct {
			WeekTotal int `json:"week_total"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.WeekTotal != 0 {
			t.Fatalf("expected empty week for other doctor, body=%s", string(body))
		}
	}
}

func TestHTTP_Calculators(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/calculators/imc", "doctor-1", map[string]any{
		"weight_kg": 70,
		"height_cm": 175,
		"age_years": 30,
		"sex":       "masculino",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 imc, got %d body=%s", st, string(body))
	}
	var imc struct {
		Classification string  `json:"classification"`
		TMB            float64 `json:"tmb"`
	}
	_ = json.Unmarshal(body, &imc)
	if imc.Classification != "Normal" {
		t.Fatalf("unexpected classification %q", imc.Classification)
	}
	if imc.TMB != 1648.75 {
		t.Fatalf("unexpected tmb %v", imc.TMB)
	}

	st, body = doReq(t, ts.URL, "POST", "/calculators/tmb", "doctor-1", map[string]any{
		"weight_kg":      70,
		"height_cm":      175,
		"age_years":      30,
		"sex":            "masculino",
		"activity_level": "moderado",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 tmb, got %d body=%s", st, string(body))
	}
	var tmb struct {
		GET float64 `json:"get"`
	}
	_ = json.Unmarshal(body, &tmb)
	if tmb.GET != 1648.75*1.55 {
		t.Fatalf("unexpected get %v", tmb.GET)
	}

	// Nivel de actividad desconocido => 400
	st, _ = doReq(t, ts.URL, "POST", "/calculators/tmb", "doctor-1", map[string]any{
		"weight_kg":      70,
		"height_cm":      175,
		"age_years":      30,
		"sex":            "masculino",
		"activity_level": "maratonista",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown activity level, got %d", st)
	}
}

func TestHTTP_RequiresIdentity(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Sin X-Debug-User-ID (ni token) => 401
	st, _ := doReq(t, ts.URL, "GET", "/patients/", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}

	// /health queda abierto
	st, _ = doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_ImportDocuments(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/documents/import", "doctor-1", map[string]any{
		"items": []map[string]any{
			{
				"kind":         "prescription",
				"patient_name": "Maria Silva",
				"medications":  []map[string]any{{"name": "Dipirona", "dosage": "1g", "frequency": "6/6h"}},
				"created_at":   1700000000000,
			},
			{
				"kind":         "laudo",
				"patient_name": "Maria Silva",
				"medications":  []map[string]any{{"name": "X", "dosage": "1", "frequency": "1"}},
			},
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 import, got %d body=%s", st, string(body))
	}

	var resp struct {
		Imported int `json:"imported"`
		Skipped  int `json:"skipped"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Imported != 1 || resp.Skipped != 1 {
		t.Fatalf("unexpected import result body=%s", string(body))
	}
}

func createPatient(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/patients/", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create patient, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func createAppointment(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/appointments/", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create appointment, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func createDocument(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/documents/", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create document, got %d body=%s", st, string(body))
	}
	return idFrom(t, body)
}

func idFrom(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("missing id in body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, userID string, payload any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}
