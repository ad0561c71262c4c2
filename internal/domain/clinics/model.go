package clinics

import "time"

// Clinic es un consultorio del médico. A diferencia de los documentos
// clínicos, sí es editable después de creado.
type Clinic struct {
	ID       string
	DoctorID string

	Name    string
	Address string
	Phone   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
