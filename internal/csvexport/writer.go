package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"heatwatch/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the statistics export header row.
var columns = []string{
	"Statistic ID",
	"Heatwave ID",
	"Heatwave Start",
	"Heatwave End",
	"Heatwave Max Temp (C)",
	"Alert Level",
	"Mean Temp (C)",
	"Wave Count",
	"Created At",
}

// Writer wraps csv.Writer for exporting statistics as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteStatistics converts a batch of statistics to CSV rows and writes them.
func (w *Writer) WriteStatistics(stats []domain.Statistic) error {
	for i := range stats {
		if err := w.csv.Write(statisticToRow(&stats[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// statisticToRow converts a statistic to a row. Heatwave columns stay empty
// when the statistic was loaded without its heatwave.
func statisticToRow(s *domain.Statistic) []string {
	row := make([]string, len(columns))
	row[0] = s.ID.String()
	row[1] = s.HeatwaveID.String()
	row[6] = formatTemp(s.MeanTempC)
	row[7] = strconv.Itoa(s.WaveCount)
	row[8] = s.CreatedAt.Format(time.RFC3339)

	if s.HeatwaveFrom.IsZero() {
		return row
	}
	row[2] = s.HeatwaveFrom.Format(time.RFC3339)
	row[3] = s.HeatwaveTo.Format(time.RFC3339)
	row[4] = formatTemp(s.HeatwaveMax)
	row[5] = string(domain.AlertLevelFor(s.HeatwaveMax))
	return row
}

func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Accented
// letters are replaced like any other non-ASCII character.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {sanitized_name}_{YYYY-MM-DD}.{ext}.
func BuildFilename(name, ext string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), at.Format("2006-01-02"), ext)
}
