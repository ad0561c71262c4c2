package documents

import (
	"fmt"
	"strings"
)

// Run es un tramo de texto con formato dentro de un párrafo.
type Run struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Paragraph agrupa runs; el cliente lo baja a PDF o DOCX tal cual.
type Paragraph struct {
	Runs []Run `json:"runs"`
}

// Layout es el árbol estructurado que espeja el documento impreso.
type Layout struct {
	Title      string      `json:"title"`
	Filename   string      `json:"filename"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// DoctorInfo es el membrete: datos del médico emisor.
type DoctorInfo struct {
	Name  string
	CRM   string
	CRMUF string
	Phone string
}

// Render arma el árbol de párrafos del documento. El rasterizado a
// PDF/DOCX queda del lado del cliente, igual que en la app original;
// acá solo se garantiza el contenido y el nombre de archivo.
func Render(d Document, doc DoctorInfo) Layout {
	title := "Prescrição Médica"
	suffix := "prescricao"
	if d.Kind == KindRecipe {
		title = "Receita Médica"
		suffix = "receita"
		if d.Controlled {
			title = "Receita Médica - Controle Especial"
		}
	}

	out := Layout{
		Title:    title,
		Filename: exportFilename(d.PatientName, suffix),
	}

	add := func(runs ...Run) {
		out.Paragraphs = append(out.Paragraphs, Paragraph{Runs: runs})
	}

	add(Run{Text: title, Bold: true})

	crm := doc.CRM
	if doc.CRMUF != "" {
		crm = crm + "/" + doc.CRMUF
	}
	add(Run{Text: doc.Name, Bold: true}, Run{Text: "  CRM " + crm})
	if doc.Phone != "" {
		add(Run{Text: "Telefone: " + doc.Phone})
	}

	add(Run{Text: "Paciente: ", Bold: true}, Run{Text: d.PatientName})
	if d.Kind == KindRecipe && d.PatientAddress != "" {
		add(Run{Text: "Endereço: ", Bold: true}, Run{Text: d.PatientAddress})
	}

	for i, m := range d.Medications {
		line := fmt.Sprintf("%d. %s - %s - %s", i+1, m.Name, m.Dosage, m.Frequency)
		if m.Duration != "" {
			line += " - " + m.Duration
		}
		add(Run{Text: line})
		if m.Instructions != "" {
			add(Run{Text: "   " + m.Instructions})
		}
	}

	if d.Observations != "" {
		add(Run{Text: "Observações: ", Bold: true}, Run{Text: d.Observations})
	}

	if d.Kind == KindRecipe {
		add(Run{Text: fmt.Sprintf("Validade: %d dias", d.ValidityDays)})
		if d.IssueDate != "" {
			add(Run{Text: "Data de emissão: " + d.IssueDate})
		}
	}

	return out
}

// exportFilename deriva el nombre de archivo del nombre del paciente,
// como hacían los exports originales (<nombre>_receita.pdf etc.).
func exportFilename(patientName, suffix string) string {
	name := strings.TrimSpace(patientName)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "documento"
	}
	return name + "_" + suffix
}
