package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"harvesta/pkg/harvest/repository"
)

type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(sheet, cell string, v any) {
	if w.err == nil {
		w.err = w.f.SetCellValue(sheet, cell, v)
	}
}

func kg(grams int64) float64 { return float64(grams) / 1000 }

// BuildWorkbook renders the aggregation rollups as a spreadsheet: a
// summary sheet plus per-grade, per-parcel and top-cutter breakdowns.
// Weights are reported in kilograms.
func BuildWorkbook(
	stats repository.Stats,
	byGrade []repository.GradeStat,
	byParcel []repository.ParcelStat,
	cutters []repository.CutterStat,
) (*excelize.File, error) {
	f := excelize.NewFile()
	w := &sheetWriter{f: f}

	const summary = "Resumen"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	w.set(summary, "A1", "Total de cajas")
	w.set(summary, "B1", stats.TotalBoxes)
	w.set(summary, "A2", "Peso total (kg)")
	w.set(summary, "B2", kg(stats.TotalGrams))
	w.set(summary, "A3", "Peso promedio (kg)")
	w.set(summary, "B3", stats.AvgGrams/1000)

	const grades = "Por Calidad"
	if _, err := f.NewSheet(grades); err != nil {
		return nil, err
	}
	w.set(grades, "A1", "Calidad")
	w.set(grades, "B1", "Cajas")
	w.set(grades, "C1", "Peso total (kg)")
	for i, g := range byGrade {
		row := i + 2
		w.set(grades, fmt.Sprintf("A%d", row), g.Grade)
		w.set(grades, fmt.Sprintf("B%d", row), g.Count)
		w.set(grades, fmt.Sprintf("C%d", row), kg(g.TotalGrams))
	}

	const parcels = "Por Parcela"
	if _, err := f.NewSheet(parcels); err != nil {
		return nil, err
	}
	w.set(parcels, "A1", "Parcela")
	w.set(parcels, "B1", "Cajas")
	w.set(parcels, "C1", "Peso total (kg)")
	for i, p := range byParcel {
		row := i + 2
		w.set(parcels, fmt.Sprintf("A%d", row), p.Parcel)
		w.set(parcels, fmt.Sprintf("B%d", row), p.Count)
		w.set(parcels, fmt.Sprintf("C%d", row), kg(p.TotalGrams))
	}

	const topCutters = "Cortadoras"
	if _, err := f.NewSheet(topCutters); err != nil {
		return nil, err
	}
	w.set(topCutters, "A1", "Cortadora")
	w.set(topCutters, "B1", "Nombre")
	w.set(topCutters, "C1", "Cajas")
	w.set(topCutters, "D1", "Peso total (kg)")
	w.set(topCutters, "E1", "Peso promedio (kg)")
	for i, ct := range cutters {
		row := i + 2
		w.set(topCutters, fmt.Sprintf("A%d", row), ct.CutterNumber)
		w.set(topCutters, fmt.Sprintf("B%d", row), ct.CustomName)
		w.set(topCutters, fmt.Sprintf("C%d", row), ct.Count)
		w.set(topCutters, fmt.Sprintf("D%d", row), kg(ct.TotalGrams))
		w.set(topCutters, fmt.Sprintf("E%d", row), ct.AvgGrams/1000)
	}

	if w.err != nil {
		return nil, w.err
	}
	return f, nil
}
