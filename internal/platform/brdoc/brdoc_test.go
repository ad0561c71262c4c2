package brdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "11144477735", Digits("111.444.777-35"))
	assert.Equal(t, "", Digits("abc"))
}

func TestValidCPF(t *testing.T) {
	assert.True(t, ValidCPF("111.444.777-35"))
	assert.True(t, ValidCPF("11144477735"))
	assert.False(t, ValidCPF("123"))
	assert.False(t, ValidCPF("111444777350"))
	assert.False(t, ValidCPF(""))
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "111.444.777-35", FormatCPF("11144477735"))
	// idempotente solo sobre 11 dígitos
	assert.Equal(t, "111.444.777-35", FormatCPF("111.444.777-35"))
	// otro largo vuelve sin tocar
	assert.Equal(t, "123", FormatCPF("123"))
	assert.Equal(t, "", FormatCPF(""))
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", FormatPhone("11987654321"))
	assert.Equal(t, "(11) 8765-4321", FormatPhone("1187654321"))
	assert.Equal(t, "12345", FormatPhone("12345"))
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, StrongPassword("Abcdefg1!"))
	assert.False(t, StrongPassword("abcdefgh")) // sin mayúscula/dígito/símbolo
	assert.False(t, StrongPassword("Ab1!"))     // corta
	assert.False(t, StrongPassword("Abcdefg1_")) // "_" no cuenta como símbolo
	assert.False(t, StrongPassword("ABCDEFG1!"))
	assert.False(t, StrongPassword("abcdefg1!"))
	assert.False(t, StrongPassword("Abcdefgh!"))
}
