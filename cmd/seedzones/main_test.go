package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZoneRows(t *testing.T) {
	rows := [][]string{
		{"city", "street", "number", "latitude", "longitude", "radius_km"},
		{"Dakar", "Avenue Cheikh Anta Diop", "12", "14.69", "-17.46", "2"},
		{"Saint-Louis", "Rue de l'Église", "3", "16,03", "-16,49", "1.5"},
		{"dakar", "avenue cheikh anta diop", "12", "14.69", "-17.46", "2"},
		{"Thiès", "", "1", "14.79", "-16.92", "1"},
		{"Matam", "Route nationale", "x", "15.65", "-13.25", "1"},
		{"Kédougou", "Quartier Dalaba", "4", "12.55", "-12.17", "0"},
		{"Ziguinchor"},
	}

	zones, skipped := parseZoneRows(rows)

	require.Len(t, zones, 2)
	assert.Equal(t, 5, skipped)
	assert.Equal(t, "Dakar", zones[0].city)
	assert.InDelta(t, 16.03, zones[1].latitude, 1e-9)
	assert.InDelta(t, -16.49, zones[1].longitude, 1e-9)
}

func TestParseZoneRow_StableID(t *testing.T) {
	a, ok := parseZoneRow([]string{"Dakar", "Rue 10", "5", "14.7", "-17.4", "1"})
	require.True(t, ok)
	b, ok := parseZoneRow([]string{" DAKAR ", "rue 10", "5", "14.7", "-17.4", "3"})
	require.True(t, ok)
	assert.Equal(t, a.id, b.id)
}

func TestWriteBatch_EscapesQuotes(t *testing.T) {
	z, ok := parseZoneRow([]string{"Saint-Louis", "Rue de l'Église", "3", "16.03", "-16.49", "1.5"})
	require.True(t, ok)

	var b strings.Builder
	writeBatch(&b, []zoneRow{z})

	assert.Contains(t, b.String(), "'Rue de l''Église'")
	assert.Contains(t, b.String(), "ON CONFLICT (id) DO NOTHING;")
	assert.Contains(t, b.String(), "16.030000, -16.490000, 1.500")
}
