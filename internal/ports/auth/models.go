package auth

// Claims es la identidad extraída del token: el médico autenticado.
// UserID alcanza para scopear todas las consultas ("mis registros").
type Claims struct {
	UserID string
	Email  string
}
