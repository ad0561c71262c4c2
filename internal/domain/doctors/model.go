package doctors

import "time"

// Doctor es el dueño de todos los demás registros. El ID coincide
// con la identidad de autenticación (sub del token).
type Doctor struct {
	ID    string
	Name  string
	Email string

	CPF    string // forma canónica: solo dígitos
	CRM    string
	CRMUF  string
	Phone  string // forma canónica: solo dígitos
	Avatar string

	PasswordHash string

	// Token de reseteo vigente (uno por vez); vacío si no hay pedido activo.
	ResetToken        string
	ResetTokenExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
