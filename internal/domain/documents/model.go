package documents

import "time"

// Kind discrimina prescripción de receta dentro de la colección unificada.
type Kind string

const (
	KindPrescription Kind = "prescription"
	KindRecipe       Kind = "recipe"
)

// Medication es una entrada de la lista ordenada de medicamentos.
// Todo texto libre, como en los formularios.
type Medication struct {
	Name         string
	Dosage       string
	Frequency    string
	Duration     string
	Instructions string
}

// Document es una prescripción o receta. Inmutable después de creado:
// no hay path de update, solo lectura y borrado.
type Document struct {
	ID       string
	DoctorID string
	Kind     Kind

	PatientID   string
	PatientName string // snapshot al momento de emitir

	Medications  []Medication
	Observations string

	// Solo receta:
	Controlled     bool
	ValidityDays   int
	IssueDate      string // YYYY-MM-DD
	PatientAddress string // snapshot de la dirección del paciente

	CreatedAt time.Time
}
