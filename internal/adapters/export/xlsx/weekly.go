// Package xlsx arma planillas descargables a partir de reportes.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"medical-practice/internal/domain/reports"
)

const sheetName = "Relatório Semanal"

type WeeklyExporter struct{}

func NewWeeklyExporter() *WeeklyExporter {
	return &WeeklyExporter{}
}

// WeeklyXLSX genera la planilla del reporte: una fila por día de la
// semana y un bloque de totales del historial al final.
func (e *WeeklyExporter) WeeklyXLSX(w reports.Weekly) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("borrar hoja default: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo de cabecera: %w", err)
	}

	title := fmt.Sprintf("Semana de %s a %s",
		w.WeekStart.Format("02/01/2006"), w.WeekEnd.Format("02/01/2006"))
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return nil, err
	}

	headers := []string{"Dia", "Data", "Prescrições", "Receitas", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, "A3", "E3", headerStyle); err != nil {
		return nil, err
	}

	row := 4
	for _, d := range w.Days {
		values := []any{d.DayName, d.Label, d.Prescriptions, d.Recipes, d.Total}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	row++
	totals := [][2]any{
		{"Total da semana", w.WeekTotal},
		{"Média diária", w.DailyAverage},
		{"Pacientes cadastrados", w.TotalPatients},
		{"Prescrições (histórico)", w.TotalPrescriptions},
		{"Receitas (histórico)", w.TotalRecipes},
		{"Atendimentos (histórico)", w.TotalAttendances},
		{"Pacientes atendidos", w.UniquePatients},
		{"Participação prescrições (%)", w.PrescriptionShare},
		{"Participação receitas (%)", w.RecipeShare},
	}
	if w.BusiestDay != nil {
		totals = append(totals, [2]any{"Dia mais movimentado", w.BusiestDay.DayName})
	}
	for _, pair := range totals {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(sheetName, labelCell, pair[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, valueCell, pair[1]); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetColWidth(sheetName, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "E", 14); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribir planilla: %w", err)
	}
	return buf.Bytes(), nil
}
