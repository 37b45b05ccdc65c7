package views

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/erazemk/bloodbank/internal/model"
)

// barWidth is the length of the longest bar in a chart.
const barWidth = 30

// Analytics renders the summary cards of the analytics page.
func Analytics(w io.Writer, a model.Analytics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row(tw, "Hotspots:", strconv.Itoa(a.TotalHotspots))
	row(tw, "High risk zones:", strconv.Itoa(a.HighRiskZones))
	row(tw, "Reports:", strconv.Itoa(a.TotalReports))
	row(tw, "Resolved:", fmt.Sprintf("%d (%s%%)", a.ResolvedReports, humanize.FtoaWithDigits(a.ResolutionRate*100, 1)))
	row(tw, "Rainfall (24h):", humanize.FtoaWithDigits(a.Rainfall24h, 1)+" mm")
	return tw.Flush()
}

// Rainfall renders daily rainfall as a horizontal bar chart.
func Rainfall(w io.Writer, points []model.RainfallPoint) error {
	if len(points) == 0 {
		_, err := fmt.Fprintln(w, "No rainfall data.")
		return err
	}
	var peak float64
	for _, p := range points {
		peak = max(peak, p.Millimetres)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range points {
		row(tw, p.Date.String(), humanize.FtoaWithDigits(p.Millimetres, 1)+" mm", bar(p.Millimetres, peak))
	}
	return tw.Flush()
}

// Distribution renders the hotspot count per severity.
func Distribution(w io.Writer, entries []model.DistributionEntry) error {
	var peak float64
	for _, e := range entries {
		peak = max(peak, float64(e.Count))
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		row(tw, string(e.Severity), strconv.Itoa(e.Count), bar(float64(e.Count), peak))
	}
	return tw.Flush()
}

// Predictions renders the predicted severity of each hotspot, escalations
// marked with an arrow.
func Predictions(w io.Writer, predictions []model.Prediction) error {
	if len(predictions) == 0 {
		_, err := fmt.Fprintln(w, "No predictions.")
		return err
	}
	tw := newTable(w, "ID", "LOCATION", "NOW", "PREDICTED")
	for _, p := range predictions {
		predicted := string(p.PredictedSeverity)
		if p.PredictedSeverity != p.CurrentSeverity {
			predicted = "^ " + predicted
		}
		row(tw, strconv.FormatInt(p.HotspotID, 10), p.Location, string(p.CurrentSeverity), predicted)
	}
	return tw.Flush()
}

func bar(v, peak float64) string {
	if peak <= 0 || v <= 0 {
		return ""
	}
	n := int(v / peak * barWidth)
	return strings.Repeat("#", max(n, 1))
}
