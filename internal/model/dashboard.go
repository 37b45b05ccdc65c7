package model

import "time"

// DashboardStats are the counters on the home page.
type DashboardStats struct {
	TotalDonors    int `json:"totalDonors"`
	AvailableUnits int `json:"availableUnits"`
	ExpiringUnits  int `json:"expiringUnits"`
}

// Validate rejects negative counters.
func (s DashboardStats) Validate() error {
	if s.TotalDonors < 0 || s.AvailableUnits < 0 || s.ExpiringUnits < 0 {
		return invalid("", "dashboard counters must not be negative")
	}
	return nil
}

// Health is the backend health check response.
type Health struct {
	Status   string    `json:"status"`
	Database string    `json:"database"`
	Time     time.Time `json:"time"`
}

// Validate requires a status.
func (h Health) Validate() error {
	return required("status", h.Status)
}

// Analytics summarises the water-logging domain.
type Analytics struct {
	TotalHotspots   int     `json:"totalHotspots"`
	HighRiskZones   int     `json:"highRiskZones"`
	TotalReports    int     `json:"totalReports"`
	ResolvedReports int     `json:"resolvedReports"`
	ResolutionRate  float64 `json:"resolutionRate"`
	Rainfall24h     float64 `json:"rainfall24h"`
}

// Validate rejects impossible ratios.
func (a Analytics) Validate() error {
	if a.ResolutionRate < 0 || a.ResolutionRate > 1 {
		return invalid("resolutionRate", "must be between 0 and 1")
	}
	return nil
}

// RainfallPoint is the rainfall total for one day.
type RainfallPoint struct {
	Date        Date    `json:"date"`
	Millimetres float64 `json:"millimetres"`
}

// Validate requires a real date.
func (p RainfallPoint) Validate() error {
	if !p.Date.Valid() {
		return invalid("date", "invalid date %q", p.Date.String())
	}
	if p.Millimetres < 0 {
		return invalid("millimetres", "must not be negative")
	}
	return nil
}

// DistributionEntry counts hotspots of one severity.
type DistributionEntry struct {
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
}

// Validate requires a known severity.
func (e DistributionEntry) Validate() error {
	_, err := ParseSeverity(string(e.Severity))
	return err
}

// Prediction is the expected severity of a hotspot given recent rainfall.
type Prediction struct {
	HotspotID         int64    `json:"hotspotId"`
	Location          string   `json:"location"`
	CurrentSeverity   Severity `json:"currentSeverity"`
	PredictedSeverity Severity `json:"predictedSeverity"`
}

// Validate requires known severities.
func (p Prediction) Validate() error {
	if _, err := ParseSeverity(string(p.CurrentSeverity)); err != nil {
		return err
	}
	_, err := ParseSeverity(string(p.PredictedSeverity))
	return err
}
