package reports

import "time"

// DayBucket es un día de la semana mostrada, con sus conteos.
// Date viaja en el JSON para que el reporte sobreviva intacto al
// round-trip por el cache.
type DayBucket struct {
	Date          time.Time `json:"iso_date"`
	Label         string    `json:"date"`     // dd/mm/yyyy
	DayName       string    `json:"day_name"` // pt-BR
	Total         int       `json:"total"`
	Prescriptions int       `json:"prescriptions"`
	Recipes       int       `json:"recipes"`
}

// Weekly es el reporte completo: la semana en curso desglosada por día
// más los agregados sobre todo el historial.
type Weekly struct {
	WeekStart time.Time   `json:"week_start"`
	WeekEnd   time.Time   `json:"week_end"`
	Days      []DayBucket `json:"days"` // siempre 7, lunes a domingo

	WeekTotal    int     `json:"week_total"`
	DailyAverage float64 `json:"daily_average"`
	// Día de la semana con más atendimientos; nil si la semana está vacía.
	BusiestDay *DayBucket `json:"busiest_day,omitempty"`

	TotalPatients      int `json:"total_patients"`
	TotalPrescriptions int `json:"total_prescriptions"`
	TotalRecipes       int `json:"total_recipes"`
	TotalAttendances   int `json:"total_attendances"`
	// Pacientes distintos con al menos un documento (unión, no suma).
	UniquePatients int `json:"unique_patients"`

	// Participación porcentual de cada tipo sobre el total combinado.
	// Ambas 0 cuando no hay documentos (nunca NaN).
	PrescriptionShare float64 `json:"prescription_share"`
	RecipeShare       float64 `json:"recipe_share"`
}
