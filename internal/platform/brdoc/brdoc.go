// Package brdoc agrupa helpers de documentos brasileños (CPF, teléfono)
// y la política de contraseñas del registro.
// Validación y formateo son cosas separadas: el formateador nunca rechaza,
// solo agrupa cuando la forma canónica tiene el largo esperado.
package brdoc

import "strings"

// Digits devuelve la forma canónica: solo dígitos.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF: válido sii quedan exactamente 11 dígitos tras limpiar.
func ValidCPF(s string) bool {
	return len(Digits(s)) == 11
}

// FormatCPF agrupa XXX.XXX.XXX-XX solo con 11 dígitos canónicos;
// cualquier otro largo vuelve sin tocar.
func FormatCPF(s string) string {
	clean := Digits(s)
	if len(clean) != 11 {
		return s
	}
	return clean[0:3] + "." + clean[3:6] + "." + clean[6:9] + "-" + clean[9:11]
}

// FormatPhone: 11 dígitos => (XX) XXXXX-XXXX, 10 => (XX) XXXX-XXXX,
// otro largo vuelve sin tocar.
func FormatPhone(s string) string {
	clean := Digits(s)
	switch len(clean) {
	case 11:
		return "(" + clean[0:2] + ") " + clean[2:7] + "-" + clean[7:11]
	case 10:
		return "(" + clean[0:2] + ") " + clean[2:6] + "-" + clean[6:10]
	default:
		return s
	}
}

// StrongPassword exige mínimo 8 caracteres con minúscula, mayúscula,
// dígito y símbolo. Solo aplica al registro; el login exige apenas
// largo >= 6 (esa asimetría es intencional y vive en el service de doctors).
func StrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r != '_':
			// guion bajo cuenta como carácter de palabra, no como símbolo
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
