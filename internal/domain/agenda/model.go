package agenda

import "time"

// Appointment es un ítem de agenda. No hay unicidad: se permiten
// duplicados de fecha+hora; el orden cronológico sale de date+time.
type Appointment struct {
	ID       string
	DoctorID string

	PatientID   string
	PatientName string // snapshot al momento de agendar

	Date string // YYYY-MM-DD
	Time string // HH:MM
	Task string

	Completed bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SortKey ordena por fecha y hora; el formato ISO compara bien como string.
func (a Appointment) SortKey() string {
	return a.Date + "T" + a.Time
}
