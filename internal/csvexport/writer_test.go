package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heatwatch/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)

	assert.Len(t, row, len(columns))
	assert.Equal(t, "Statistic ID", row[0])
	assert.Equal(t, "Created At", row[len(row)-1])
}

func TestWriteStatistics_WithHeatwave(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	stat := domain.Statistic{
		ID:           uuid.New(),
		HeatwaveID:   uuid.New(),
		MeanTempC:    38.456,
		WaveCount:    3,
		CreatedAt:    start,
		HeatwaveMax:  42.5,
		HeatwaveFrom: start,
		HeatwaveTo:   start.Add(72 * time.Hour),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteStatistics([]domain.Statistic{stat}))
	w.Flush()

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)
	assert.Equal(t, stat.ID.String(), row[0])
	assert.Equal(t, "2025-05-01T00:00:00Z", row[2])
	assert.Equal(t, "2025-05-04T00:00:00Z", row[3])
	assert.Equal(t, "42.50", row[4])
	assert.Equal(t, "danger", row[5])
	assert.Equal(t, "38.46", row[6])
	assert.Equal(t, "3", row[7])
}

func TestWriteStatistics_WithoutHeatwave(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteStatistics([]domain.Statistic{{ID: uuid.New(), MeanTempC: 30}}))
	w.Flush()

	row, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)
	assert.Empty(t, row[2])
	assert.Empty(t, row[5])
	assert.Equal(t, "30.00", row[6])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dakar", "Dakar"},
		{"Saint-Louis", "Saint-Louis"},
		{"Thiès région", "Thi_s_r_gion"},
		{"  spaces  ", "spaces"},
		{"a//b", "a_b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), tt.in)
	}
}

func TestBuildFilename(t *testing.T) {
	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "statistics_2025-06-02.csv", BuildFilename("statistics", "csv", at))
	assert.Equal(t, "Thi_s_2025-06-02.xlsx", BuildFilename("Thiès", "xlsx", at))
}
