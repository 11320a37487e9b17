package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"heatwatch/internal/domain"
)

const (
	summarySheet   = "Synthèse"
	heatwaveSheet  = "Vagues"
	recommendSheet = "Recommandations"
)

// RenderXLSX writes an XLSX workbook for snap with a summary sheet, one row
// per active heatwave and one row per recommendation.
func RenderXLSX(w io.Writer, snap *domain.RegionSnapshot) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("report.RenderXLSX: %w", err)
	}
	if err := writeSummary(f, snap); err != nil {
		return fmt.Errorf("report.RenderXLSX: summary: %w", err)
	}
	if err := writeHeatwaves(f, snap.ActiveHeatwaves); err != nil {
		return fmt.Errorf("report.RenderXLSX: heatwaves: %w", err)
	}
	if err := writeRecommendations(f, snap.Recommendations); err != nil {
		return fmt.Errorf("report.RenderXLSX: recommendations: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("report.RenderXLSX: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, snap *domain.RegionSnapshot) error {
	rows := [][]interface{}{
		{"Région", snap.Region},
		{"Date", snap.GeneratedAt.Format(dateLayout)},
		{"Latitude", snap.Latitude},
		{"Longitude", snap.Longitude},
		{"Température max (°C)", snap.MaxTempC},
		{"Humidité (%)", snap.HumidityPct},
		{"Niveau d'alerte", LevelLabel(snap.Level)},
	}
	return writeRows(f, summarySheet, rows)
}

func writeHeatwaves(f *excelize.File, waves []domain.Heatwave) error {
	if _, err := f.NewSheet(heatwaveSheet); err != nil {
		return err
	}
	rows := [][]interface{}{{"Début", "Fin", "Température max (°C)", "Intensité", "Humidité (%)"}}
	for i := range waves {
		h := &waves[i]
		rows = append(rows, []interface{}{
			h.StartsAt.Format(dateLayout), h.EndsAt.Format(dateLayout), h.MaxTempC, h.Intensity, h.HumidityPct,
		})
	}
	return writeRows(f, heatwaveSheet, rows)
}

func writeRecommendations(f *excelize.File, recs []domain.Recommendation) error {
	if _, err := f.NewSheet(recommendSheet); err != nil {
		return err
	}
	rows := [][]interface{}{{"Titre", "Description"}}
	for _, r := range recs {
		rows = append(rows, []interface{}{r.Title, r.Description})
	}
	return writeRows(f, recommendSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
