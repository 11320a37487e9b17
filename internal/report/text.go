// Package report renders region snapshots for download.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"heatwatch/internal/domain"
)

const dateLayout = "02/01/2006"

var levelLabels = map[domain.AlertLevel]string{
	domain.AlertLevelNormal:  "Normal",
	domain.AlertLevelWarning: "Vigilance",
	domain.AlertLevelDanger:  "Danger",
}

// LevelLabel is the display label of an alert level.
func LevelLabel(l domain.AlertLevel) string {
	if s, ok := levelLabels[l]; ok {
		return s
	}
	return string(l)
}

// RenderText writes a plain-text report for snap.
func RenderText(w io.Writer, snap *domain.RegionSnapshot) error {
	var b strings.Builder
	title := fmt.Sprintf("Rapport Canicule - %s", snap.Region)
	fmt.Fprintln(&b, title)
	fmt.Fprintln(&b, strings.Repeat("=", len([]rune(title))))
	fmt.Fprintf(&b, "Date: %s\n", snap.GeneratedAt.Format(dateLayout))
	fmt.Fprintf(&b, "Coordonnées: %.4f, %.4f\n", snap.Latitude, snap.Longitude)
	fmt.Fprintf(&b, "Température max: %.1f°C\n", snap.MaxTempC)
	fmt.Fprintf(&b, "Humidité: %.0f%%\n", snap.HumidityPct)
	fmt.Fprintf(&b, "Niveau d'alerte: %s\n", LevelLabel(snap.Level))

	fmt.Fprintf(&b, "\nVagues de chaleur actives (%d)\n", len(snap.ActiveHeatwaves))
	if len(snap.ActiveHeatwaves) == 0 {
		fmt.Fprintln(&b, "  aucune")
	}
	for i := range snap.ActiveHeatwaves {
		h := &snap.ActiveHeatwaves[i]
		fmt.Fprintf(&b, "  - du %s au %s, max %.1f°C, intensité %.1f, humidité %.0f%%\n",
			h.StartsAt.Format(dateLayout), h.EndsAt.Format(dateLayout), h.MaxTempC, h.Intensity, h.HumidityPct)
	}

	fmt.Fprintf(&b, "\nRecommandations (%d)\n", len(snap.Recommendations))
	if len(snap.Recommendations) == 0 {
		fmt.Fprintln(&b, "  aucune")
	}
	for _, r := range snap.Recommendations {
		fmt.Fprintf(&b, "  - %s: %s\n", r.Title, r.Description)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report.RenderText: %w", err)
	}
	return nil
}

// Filename returns the download name for a region report.
func Filename(region, ext string, at time.Time) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, region)
	return fmt.Sprintf("rapport_%s_%s.%s", name, at.Format("2006-01-02"), ext)
}
