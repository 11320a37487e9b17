// Command seedzones converts a spreadsheet of monitored zones into a SQL seed file.
// Sheet 1, header on the first row, columns:
// city | street | number | latitude | longitude | radius_km
// Usage: go run ./cmd/seedzones [input.xlsx] [output.sql]
// Output defaults to db/seeds/zones.sql
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const batchSize = 500

// zoneNamespace makes seeded ids stable, so re-running a seed is a no-op.
var zoneNamespace = uuid.MustParse("6f1c2f0e-3b43-4d2f-9a53-2b8f5e0d7c41")

type zoneRow struct {
	id        uuid.UUID
	city      string
	street    string
	number    int
	latitude  float64
	longitude float64
	radiusKM  float64
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("seedzones failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	xlsxPath := "zones.xlsx"
	outPath := "db/seeds/zones.sql"
	if len(args) > 0 {
		xlsxPath = args[0]
	}
	if len(args) > 1 {
		outPath = args[1]
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read sheet: %w", err)
	}
	zones, skipped := parseZoneRows(rows)
	slog.Info("zones parsed", slog.Int("zones", len(zones)), slog.Int("skipped", skipped))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	var b strings.Builder
	fmt.Fprintf(&b, "-- Zone seed data generated from %s.\n", filepath.Base(xlsxPath))
	fmt.Fprintf(&b, "-- %d zones in batches of %d.\nBEGIN;\n\n", len(zones), batchSize)
	for i := 0; i < len(zones); i += batchSize {
		end := min(i+batchSize, len(zones))
		writeBatch(&b, zones[i:end])
	}
	b.WriteString("\nCOMMIT;\n")

	if _, err := out.WriteString(b.String()); err != nil {
		return fmt.Errorf("write seed: %w", err)
	}
	slog.Info("seed written", slog.String("path", outPath),
		slog.Int("batches", (len(zones)+batchSize-1)/batchSize))
	return nil
}

// parseZoneRows skips the header row and any row that does not describe a
// valid zone. It returns the zones and the number of skipped data rows.
func parseZoneRows(rows [][]string) ([]zoneRow, int) {
	var (
		zones   []zoneRow
		skipped int
	)
	seen := make(map[uuid.UUID]bool)
	for i := 1; i < len(rows); i++ {
		z, ok := parseZoneRow(rows[i])
		if !ok || seen[z.id] {
			skipped++
			continue
		}
		seen[z.id] = true
		zones = append(zones, z)
	}
	return zones, skipped
}

func parseZoneRow(row []string) (zoneRow, bool) {
	city := strings.TrimSpace(cellVal(row, 0))
	street := strings.TrimSpace(cellVal(row, 1))
	if city == "" || street == "" {
		return zoneRow{}, false
	}
	number, err := strconv.Atoi(strings.TrimSpace(cellVal(row, 2)))
	if err != nil || number < 0 {
		return zoneRow{}, false
	}
	lat, err1 := parseDecimal(cellVal(row, 3))
	lng, err2 := parseDecimal(cellVal(row, 4))
	radius, err3 := parseDecimal(cellVal(row, 5))
	if err1 != nil || err2 != nil || err3 != nil {
		return zoneRow{}, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 || radius <= 0 {
		return zoneRow{}, false
	}

	key := fmt.Sprintf("%s|%s|%d", strings.ToLower(city), strings.ToLower(street), number)
	return zoneRow{
		id:        uuid.NewSHA1(zoneNamespace, []byte(key)),
		city:      city,
		street:    street,
		number:    number,
		latitude:  lat,
		longitude: lng,
		radiusKM:  radius,
	}, true
}

// parseDecimal accepts both "14.69" and the French "14,69".
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

func writeBatch(b *strings.Builder, batch []zoneRow) {
	if len(batch) == 0 {
		return
	}
	b.WriteString("INSERT INTO zones (id, city, street, number, latitude, longitude, radius_km) VALUES\n")
	for i := range batch {
		z := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(b, "  ('%s', '%s', '%s', %d, %.6f, %.6f, %.3f)",
			z.id, escapeSQL(z.city), escapeSQL(z.street), z.number, z.latitude, z.longitude, z.radiusKM)
	}
	b.WriteString("\nON CONFLICT (id) DO NOTHING;\n")
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
