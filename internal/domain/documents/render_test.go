package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Recipe(t *testing.T) {
	d := Document{
		Kind:        KindRecipe,
		PatientName: "Maria Silva",
		Medications: []Medication{
			{Name: "Amoxicilina", Dosage: "500mg", Frequency: "8/8h", Duration: "7 dias", Instructions: "Tomar com água"},
		},
		Observations:   "Retornar em 10 dias",
		ValidityDays:   30,
		IssueDate:      "2026-03-04",
		PatientAddress: "Bela Vista, São Paulo, SP",
	}
	layout := Render(d, DoctorInfo{Name: "Dr. João Souza", CRM: "123456", CRMUF: "SP"})

	assert.Equal(t, "Receita Médica", layout.Title)
	assert.Equal(t, "Maria_Silva_receita", layout.Filename)

	var texts []string
	for _, p := range layout.Paragraphs {
		line := ""
		for _, r := range p.Runs {
			line += r.Text
		}
		texts = append(texts, line)
	}
	assert.Contains(t, texts, "Dr. João Souza  CRM 123456/SP")
	assert.Contains(t, texts, "Paciente: Maria Silva")
	assert.Contains(t, texts, "Endereço: Bela Vista, São Paulo, SP")
	assert.Contains(t, texts, "1. Amoxicilina - 500mg - 8/8h - 7 dias")
	assert.Contains(t, texts, "Validade: 30 dias")
	assert.Contains(t, texts, "Data de emissão: 2026-03-04")
}

func TestRender_ControlledRecipeTitle(t *testing.T) {
	layout := Render(Document{Kind: KindRecipe, Controlled: true, PatientName: "Maria"}, DoctorInfo{})
	assert.Equal(t, "Receita Médica - Controle Especial", layout.Title)
}

func TestRender_Prescription(t *testing.T) {
	d := Document{
		Kind:        KindPrescription,
		PatientName: "Maria Silva",
		Medications: []Medication{{Name: "Dipirona", Dosage: "1g", Frequency: "6/6h"}},
	}
	layout := Render(d, DoctorInfo{Name: "Dra. Ana", CRM: "654321", CRMUF: "RJ"})

	assert.Equal(t, "Prescrição Médica", layout.Title)
	assert.Equal(t, "Maria_Silva_prescricao", layout.Filename)

	require.NotEmpty(t, layout.Paragraphs)
	// Sin dirección ni validez en prescripciones.
	for _, p := range layout.Paragraphs {
		for _, r := range p.Runs {
			assert.NotContains(t, r.Text, "Endereço")
			assert.NotContains(t, r.Text, "Validade")
		}
	}
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Maria_Silva_receita", exportFilename("Maria Silva", "receita"))
	assert.Equal(t, "documento_receita", exportFilename("  ", "receita"))
}
