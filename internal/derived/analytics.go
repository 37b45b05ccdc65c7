package derived

import "github.com/erazemk/bloodbank/internal/model"

// HeavyRainfallMM is the 24-hour rainfall at which every hotspot is expected
// to get one severity level worse.
const HeavyRainfallMM = 40.0

// Summarize computes the analytics header counters.
func Summarize(hotspots []model.Hotspot, reports []model.Report, rainfall24h float64) model.Analytics {
	a := model.Analytics{
		TotalHotspots: len(hotspots),
		TotalReports:  len(reports),
		Rainfall24h:   rainfall24h,
	}
	for _, h := range hotspots {
		if h.Severity.Rank() >= model.SeverityHigh.Rank() {
			a.HighRiskZones++
		}
	}
	for _, r := range reports {
		if r.Status == model.ReportResolved {
			a.ResolvedReports++
		}
	}
	if a.TotalReports > 0 {
		a.ResolutionRate = float64(a.ResolvedReports) / float64(a.TotalReports)
	}
	return a
}

// Distribution counts hotspots per severity, in severity order. Severities
// without hotspots are reported with a zero count.
func Distribution(hotspots []model.Hotspot) []model.DistributionEntry {
	counts := make(map[model.Severity]int, len(model.Severities))
	for _, h := range hotspots {
		counts[h.Severity]++
	}
	out := make([]model.DistributionEntry, 0, len(model.Severities))
	for _, s := range model.Severities {
		out = append(out, model.DistributionEntry{Severity: s, Count: counts[s]})
	}
	return out
}

// Predict returns the expected severity of every hotspot given the last
// 24 hours of rainfall.
func Predict(hotspots []model.Hotspot, rainfall24h float64) []model.Prediction {
	out := make([]model.Prediction, 0, len(hotspots))
	for _, h := range hotspots {
		next := h.Severity
		if rainfall24h >= HeavyRainfallMM {
			next = next.Escalate()
		}
		out = append(out, model.Prediction{
			HotspotID:         h.ID,
			Location:          h.Location,
			CurrentSeverity:   h.Severity,
			PredictedSeverity: next,
		})
	}
	return out
}
