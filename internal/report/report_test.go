package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"heatwatch/internal/domain"
	"heatwatch/internal/report"
)

func snapshot() *domain.RegionSnapshot {
	start := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	return &domain.RegionSnapshot{
		Region:      "Thiès",
		Latitude:    14.795,
		Longitude:   -16.935,
		GeneratedAt: time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC),
		MaxTempC:    41.2,
		HumidityPct: 35,
		Level:       domain.AlertLevelDanger,
		ActiveHeatwaves: []domain.Heatwave{
			{MaxTempC: 41.2, Intensity: 3, HumidityPct: 35, StartsAt: start, EndsAt: start.Add(96 * time.Hour)},
		},
		Recommendations: []domain.Recommendation{
			{Title: "Hydratation", Description: "Buvez au moins 2L d'eau par jour"},
		},
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.RenderText(&buf, snapshot()))

	out := buf.String()
	assert.Contains(t, out, "Rapport Canicule - Thiès")
	assert.Contains(t, out, "Date: 12/05/2025")
	assert.Contains(t, out, "Température max: 41.2°C")
	assert.Contains(t, out, "Niveau d'alerte: Danger")
	assert.Contains(t, out, "du 10/05/2025 au 14/05/2025")
	assert.Contains(t, out, "Hydratation: Buvez au moins 2L d'eau par jour")
}

func TestRenderText_EmptySections(t *testing.T) {
	snap := snapshot()
	snap.ActiveHeatwaves = nil
	snap.Recommendations = nil
	snap.Level = domain.AlertLevelNormal

	var buf bytes.Buffer
	require.NoError(t, report.RenderText(&buf, snap))
	assert.Contains(t, buf.String(), "Vagues de chaleur actives (0)\n  aucune")
	assert.Contains(t, buf.String(), "Niveau d'alerte: Normal")
}

func TestRenderXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.RenderXLSX(&buf, snapshot()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Synthèse", "Vagues", "Recommandations"}, f.GetSheetList())

	region, err := f.GetCellValue("Synthèse", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Thiès", region)

	level, err := f.GetCellValue("Synthèse", "B7")
	require.NoError(t, err)
	assert.Equal(t, "Danger", level)

	rows, err := f.GetRows("Vagues")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "10/05/2025", rows[1][0])

	title, err := f.GetCellValue("Recommandations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Hydratation", title)
}

func TestFilename(t *testing.T) {
	at := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "rapport_Saint-Louis_2025-05-12.xlsx", report.Filename("Saint-Louis", "xlsx", at))
	assert.Equal(t, "rapport_Thi_s_2025-05-12.txt", report.Filename("Thiès", "txt", at))
}
