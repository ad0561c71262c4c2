package patients

import "time"

// Patient es la ficha de un paciente, siempre scopeada al médico que
// la creó (DoctorID). CPF se guarda en forma canónica (solo dígitos)
// y es único dentro del set del mismo médico.
type Patient struct {
	ID       string
	DoctorID string

	Name        string
	CPF         string
	DateOfBirth string // YYYY-MM-DD
	Phone       string
	Email       string

	District string
	City     string
	State    string
	CEP      string

	Gender    string
	BloodType string
	Allergies string
	// Condiciones preexistentes, texto libre.
	Conditions string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address es el resultado de la consulta por CEP para precargar
// los campos de dirección del formulario.
type Address struct {
	CEP      string
	Street   string
	District string
	City     string
	State    string
}
